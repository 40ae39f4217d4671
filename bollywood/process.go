package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process represents the running instance of an actor, including its state and mailbox.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendMessage enqueues an envelope without blocking the sender.
// It reports false when the envelope was dropped.
func (p *process) sendMessage(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}

	select {
	case p.mailbox <- envelope:
		return true
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid.ID, envelope.Message)
		return false
	}
}

func (p *process) closeStop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// run is the main loop for the actor process.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			func() {
				defer func() {
					if r := recover(); r != nil {
						fmt.Printf("Actor %s panicked during Stopped processing: %v\n", p.pid.ID, r)
					}
				}()
				p.invokeReceive(&messageEnvelope{Message: Stopped{}})
			}()
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked: %v\nStack trace:\n%s\n", p.pid.ID, r, string(debug.Stack()))
			p.stopped.Store(true)
			p.closeStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("Actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			p.drainAsks()
			return

		case envelope := <-p.mailbox:
			switch envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
					p.closeStop()
				}
			case Stopped:
				// Delivered by the deferred shutdown path only.
			default:
				if p.stopped.Load() {
					p.rejectAsk(envelope)
					continue
				}
				p.invokeReceive(envelope)
			}
		}
	}
}

// drainAsks fails every pending Ask so callers do not wait for their timeout.
func (p *process) drainAsks() {
	for {
		select {
		case envelope := <-p.mailbox:
			p.rejectAsk(envelope)
		default:
			return
		}
	}
}

func (p *process) rejectAsk(envelope *messageEnvelope) {
	if envelope.ReplyCh == nil {
		return
	}
	select {
	case envelope.ReplyCh <- fmt.Errorf("actor %s stopped: %w", p.pid.ID, ErrActorNotFound):
	default:
	}
}

// invokeReceive calls the actor's Receive method within a protected context.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    envelope.Sender,
		message:   envelope.Message,
		requestID: envelope.RequestID,
		replyCh:   envelope.ReplyCh,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid.ID, envelope.Message, r, string(debug.Stack()))
			ctx.Reply(fmt.Errorf("actor %s panicked: %v", p.pid.ID, r))
		}
	}()
	p.actor.Receive(ctx)
}
