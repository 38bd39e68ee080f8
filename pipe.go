// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import (
	"sync"
)

// A Pipe is a FIFO byte channel with a single producer and a single consumer.
// Either end may close it. Bytes queued before Close are still delivered to
// the consumer.
//
type Pipe struct {
	ch   chan byte
	done chan struct{}
	once sync.Once
	err  error // closing cause, set before done is closed
}

func newPipe(depth int) *Pipe {
	if depth < 1 {
		depth = 1
	}
	return &Pipe{
		ch:   make(chan byte, depth),
		done: make(chan struct{}),
	}
}

// Close closes the pipe.
//
func (p *Pipe) Close() {
	p.CloseWithError(nil)
}

// CloseWithError closes the pipe. Subsequent operations that would otherwise
// block or fail return a *ClosedError carrying err. Only the first call has
// any effect.
//
func (p *Pipe) CloseWithError(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

func (p *Pipe) closed() error {
	if p.err != nil {
		return &ClosedError{p.err}
	}
	return ErrChannelClosed
}

// Send queues b, blocking while the pipe is full.
//
func (p *Pipe) Send(b byte) error {
	select {
	case <-p.done:
		return p.closed()
	default:
	}
	select {
	case p.ch <- b:
		return nil
	case <-p.done:
		return p.closed()
	}
}

// TrySend queues b if there is room. It never blocks.
//
func (p *Pipe) TrySend(b byte) error {
	select {
	case <-p.done:
		return p.closed()
	default:
	}
	select {
	case p.ch <- b:
		return nil
	default:
		return ErrChannelFull
	}
}

// Recv returns the next byte, blocking until one is available or the pipe is
// closed.
//
func (p *Pipe) Recv() (byte, error) {
	select {
	case b := <-p.ch:
		return b, nil
	case <-p.done:
	}
	// drain what was queued before Close.
	select {
	case b := <-p.ch:
		return b, nil
	default:
		return 0, p.closed()
	}
}

// TryRecv returns the next byte if one is available. ok is false with a nil
// error when the pipe is empty. It never blocks.
//
func (p *Pipe) TryRecv() (b byte, ok bool, err error) {
	select {
	case b = <-p.ch:
		return b, true, nil
	default:
	}
	select {
	case <-p.done:
		return 0, false, p.closed()
	default:
		return 0, false, nil
	}
}
