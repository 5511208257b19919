package grpc

import (
	"sync"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"
)

// pool keeps one client connection per target.
type pool struct {
	mu    sync.Mutex
	opts  []grpc.DialOption
	conns map[peer.Address]*grpc.ClientConn
}

func newPool(opts ...grpc.DialOption) *pool {
	return &pool{opts: opts, conns: make(map[peer.Address]*grpc.ClientConn)}
}

func (p *pool) acquire(target peer.Address) (*grpc.ClientConn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if conn, ok := p.conns[target]; ok {
		return conn, nil
	}
	conn, err := grpc.NewClient(string(target), p.opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[transport] - failed to dial %s", target)
	}
	p.conns[target] = conn
	return conn, nil
}

func (p *pool) close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	for target, conn := range p.conns {
		err = errors.CombineErrors(err, conn.Close())
		delete(p.conns, target)
	}
	return err
}
