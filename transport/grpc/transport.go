// Package grpc implements the WhosHere gossip transports over gRPC.
package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/arya-analytics/whoshere/transport"
	whosherev1 "github.com/arya-analytics/whoshere/transport/grpc/gen/proto/go/v1"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const requestTimeout = 5 * time.Second

type Config struct {
	// RequestTimeout bounds a single outbound call.
	RequestTimeout time.Duration
	// DialOptions are applied to every outbound connection.
	DialOptions []grpc.DialOption
	// ServerOptions are applied to the gRPC server.
	ServerOptions []grpc.ServerOption
	// Logger
	Logger *zap.Logger
}

func (cfg Config) Merge(def Config) Config {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.DialOptions == nil {
		cfg.DialOptions = def.DialOptions
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return cfg
}

func DefaultConfig() Config {
	return Config{
		RequestTimeout: requestTimeout,
		DialOptions:    []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		Logger:         zap.NewNop(),
	}
}

// |||||| CORE ||||||

type core struct {
	Config
	pool *pool
}

func (c core) client(ctx context.Context, target peer.Address) (whosherev1.WhosHereClient, context.Context, context.CancelFunc, error) {
	conn, err := c.pool.acquire(target)
	if err != nil {
		return nil, ctx, func() {}, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.RequestTimeout)
	return whosherev1.NewWhosHereClient(conn), ctx, cancel, nil
}

// wrapErr marks calls that never reached a live server as unreachable.
func wrapErr(err error, method string, target peer.Address) error {
	code := status.Code(err)
	err = errors.Wrapf(err, "[transport] - %s to %s failed", method, target)
	if code == codes.Unavailable || code == codes.DeadlineExceeded {
		err = errors.Mark(err, transport.ErrUnreachable)
	}
	return err
}

func unavailable() error { return status.Error(codes.Unavailable, "no handler bound") }

// |||||| GOSSIP ||||||

type gossipTransport struct {
	core
	mu     sync.RWMutex
	handle func(ctx context.Context, msg gossip.Message) (gossip.Message, error)
}

var _ gossip.Transport = (*gossipTransport)(nil)

func (g *gossipTransport) Send(ctx context.Context, target peer.Address, msg gossip.Message) (gossip.Message, error) {
	c, ctx, cancel, err := g.client(ctx, target)
	defer cancel()
	if err != nil {
		return gossip.Message{}, err
	}
	res, err := c.Gossip(ctx, &whosherev1.GossipRequest{Info: translateBackward(msg.Records)})
	if err != nil {
		return gossip.Message{}, wrapErr(err, "gossip", target)
	}
	return gossip.Message{Records: translateForward(res.Info)}, nil
}

func (g *gossipTransport) Handle(handle func(context.Context, gossip.Message) (gossip.Message, error)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handle = handle
}

func (g *gossipTransport) Gossip(ctx context.Context, req *whosherev1.GossipRequest) (*whosherev1.GossipResponse, error) {
	g.mu.RLock()
	handle := g.handle
	g.mu.RUnlock()
	if handle == nil {
		return nil, unavailable()
	}
	res, err := handle(ctx, gossip.Message{Records: translateForward(req.Info)})
	if err != nil {
		return nil, err
	}
	return &whosherev1.GossipResponse{Info: translateBackward(res.Records)}, nil
}

// |||||| IDENTITY ||||||

type identityTransport struct {
	core
	mu     sync.RWMutex
	handle func(ctx context.Context, req gossip.WhoRequest) (gossip.Identity, error)
}

var _ gossip.IdentityTransport = (*identityTransport)(nil)

func (i *identityTransport) Send(ctx context.Context, target peer.Address, _ gossip.WhoRequest) (gossip.Identity, error) {
	c, ctx, cancel, err := i.client(ctx, target)
	defer cancel()
	if err != nil {
		return gossip.Identity{}, err
	}
	res, err := c.Whoareyou(ctx, &whosherev1.WhoRequest{})
	if err != nil {
		return gossip.Identity{}, wrapErr(err, "whoareyou", target)
	}
	return gossip.Identity{Name: res.Name, Records: translateForward(res.Info)}, nil
}

func (i *identityTransport) Handle(handle func(context.Context, gossip.WhoRequest) (gossip.Identity, error)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.handle = handle
}

func (i *identityTransport) Whoareyou(ctx context.Context, _ *whosherev1.WhoRequest) (*whosherev1.WhoResponse, error) {
	i.mu.RLock()
	handle := i.handle
	i.mu.RUnlock()
	if handle == nil {
		return nil, unavailable()
	}
	id, err := handle(ctx, gossip.WhoRequest{})
	if err != nil {
		return nil, err
	}
	return &whosherev1.WhoResponse{Name: id.Name, Info: translateBackward(id.Records)}, nil
}

// server joins the two transports into the WhosHere service.
type server struct {
	whosherev1.UnimplementedWhosHereServer
	gossip   *gossipTransport
	identity *identityTransport
}

var _ whosherev1.WhosHereServer = server{}

func (s server) Gossip(ctx context.Context, req *whosherev1.GossipRequest) (*whosherev1.GossipResponse, error) {
	return s.gossip.Gossip(ctx, req)
}

func (s server) Whoareyou(ctx context.Context, req *whosherev1.WhoRequest) (*whosherev1.WhoResponse, error) {
	return s.identity.Whoareyou(ctx, req)
}

// |||||| TRANSLATION ||||||

func translateForward(infos []*whosherev1.GossipInfo) peer.Snapshot {
	snap := make(peer.Snapshot, 0, len(infos))
	for _, info := range infos {
		if info == nil {
			continue
		}
		snap = append(snap, peer.New(info.Name, peer.Address(info.HostPort), info.Epoch))
	}
	return snap
}

func translateBackward(snap peer.Snapshot) []*whosherev1.GossipInfo {
	infos := make([]*whosherev1.GossipInfo, len(snap))
	for i, r := range snap {
		infos[i] = &whosherev1.GossipInfo{Name: r.Name, HostPort: string(r.Address), Epoch: r.Epoch}
	}
	return infos
}

// |||||| TRANSPORT ||||||

// Transport serves and dials the WhosHere service.
type Transport struct {
	Config
	pool     *pool
	gossip   *gossipTransport
	identity *identityTransport
	server   *grpc.Server
	lis      net.Listener
}

func New(cfg Config) *Transport {
	cfg = cfg.Merge(DefaultConfig())
	c := core{Config: cfg, pool: newPool(cfg.DialOptions...)}
	return &Transport{
		Config:   cfg,
		pool:     c.pool,
		gossip:   &gossipTransport{core: c},
		identity: &identityTransport{core: c},
	}
}

// Gossip returns the transport carrying Gossip calls.
func (t *Transport) Gossip() gossip.Transport { return t.gossip }

// Identity returns the transport carrying WhoAreYou calls.
func (t *Transport) Identity() gossip.IdentityTransport { return t.identity }

// Configure binds the server to addr. A bind failure is fatal to the node.
func (t *Transport) Configure(addr peer.Address) error {
	lis, err := net.Listen("tcp", string(addr))
	if err != nil {
		return errors.Wrapf(err, "[transport] - failed to bind %s", addr)
	}
	t.lis = lis
	t.server = grpc.NewServer(t.ServerOptions...)
	whosherev1.RegisterWhosHereServer(t.server, server{gossip: t.gossip, identity: t.identity})
	return nil
}

// Addr returns the address the server is bound to, or an empty address if
// Configure has not been called.
func (t *Transport) Addr() peer.Address {
	if t.lis == nil {
		return ""
	}
	return peer.Address(t.lis.Addr().String())
}

// Serve serves inbound calls until ctx is cancelled.
func (t *Transport) Serve(ctx context.Context) error {
	if t.server == nil {
		return errors.New("[transport] - serve called before configure")
	}
	errC := make(chan error, 1)
	go func() { errC <- t.server.Serve(t.lis) }()
	t.Logger.Info("serving", zap.Stringer("addr", t.Addr()))
	select {
	case <-ctx.Done():
		t.server.Stop()
		<-errC
		return nil
	case err := <-errC:
		return errors.Wrap(err, "[transport] - server stopped")
	}
}

// Close releases the listener and every outbound connection.
func (t *Transport) Close() error {
	if t.lis != nil {
		// Already closed if Serve ran.
		_ = t.lis.Close()
	}
	return t.pool.close()
}

func (t *Transport) String() string { return "grpc" }
