package commands

import (
	"context"
	"time"

	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reasonSkipped       = "skipped"
	reasonStaff         = "staff"
	reasonCustomer      = "customer"
	reasonAdvanceNotice = "advance_notice"
)

type IssueTicketRequest struct {
	Name  string
	Email string
	Phone string
}

type IssueTicketResult struct {
	TicketID             uuid.UUID
	QueueID              uuid.UUID
	TicketNumber         int
	OperatingDate        string
	Position             int
	EstimatedWaitMinutes int
}

type CallNextResult struct {
	TicketID      uuid.UUID
	TicketNumber  int
	CurrentNumber int
	Cancelled     int
}

type RateRequest struct {
	Email    string
	Rating   int
	Feedback string
}

type TicketCommands interface {
	Issue(ctx context.Context, queueID uuid.UUID, req IssueTicketRequest) (*IssueTicketResult, error)
	IssueManual(ctx context.Context, member staff.Member, queueID uuid.UUID, name string) (*IssueTicketResult, error)
	CallNext(ctx context.Context, member staff.Member, queueID uuid.UUID) (*CallNextResult, error)
	Start(ctx context.Context, member staff.Member, ticketID uuid.UUID) error
	Complete(ctx context.Context, member staff.Member, ticketID uuid.UUID) error
	Cancel(ctx context.Context, member staff.Member, ticketID uuid.UUID) error
	CustomerCancel(ctx context.Context, ticketID uuid.UUID, email string) error
	Rate(ctx context.Context, ticketID uuid.UUID, req RateRequest) error
}

type ticketUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	zones shared.Zones
	guard claim.Guard
}

func NewTicketUseCase(uow shared.UnitOfWork, clk clock.Clock, zones shared.Zones, guard claim.Guard) TicketCommands {
	return &ticketUseCaseImpl{
		uow:   uow,
		clock: clk,
		zones: zones,
		guard: guard,
	}
}

// Issue allocates the next number under the queue row lock, so concurrent callers
// never share a number and the counter never falls behind the tickets table.
func (uc *ticketUseCaseImpl) Issue(ctx context.Context, queueID uuid.UUID, req IssueTicketRequest) (*IssueTicketResult, error) {
	contact, err := customer.NewContact(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, classify(err)
	}

	var result *IssueTicketResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Queues().LockByID(ctx, tx.DB(), queueID)
		if derr != nil {
			return notFound(derr, errs.ErrQueueNotFound)
		}
		now, derr := businessNow(ctx, uc.zones, uc.clock, q.BusinessID())
		if derr != nil {
			return derr
		}
		q.RollOver(schedule.DateOf(now))

		statuses, derr := tx.Reads().ActiveTicketStatuses(ctx, q.ID(), contact.Email().Value())
		if derr != nil {
			return derr
		}
		if derr = uc.guard.CheckTicket(statuses); derr != nil {
			return classify(derr)
		}

		alloc, derr := q.Issue(now)
		if derr != nil {
			return classify(derr)
		}
		result, derr = uc.persistIssued(ctx, tx, q, alloc, contact, false, now)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IssueManual registers a walk-in by name; operating hours and the duplicate guard do not apply.
func (uc *ticketUseCaseImpl) IssueManual(ctx context.Context, member staff.Member, queueID uuid.UUID, name string) (*IssueTicketResult, error) {
	contact, err := customer.NewWalkIn(name)
	if err != nil {
		return nil, classify(err)
	}

	var result *IssueTicketResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Queues().LockByID(ctx, tx.DB(), queueID)
		if derr != nil {
			return notFound(derr, errs.ErrQueueNotFound)
		}
		if derr = member.Authorize(q.BusinessID()); derr != nil {
			return classify(derr)
		}
		now, derr := businessNow(ctx, uc.zones, uc.clock, q.BusinessID())
		if derr != nil {
			return derr
		}
		q.RollOver(schedule.DateOf(now))

		result, derr = uc.persistIssued(ctx, tx, q, q.IssueManual(), contact, true, now)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ticketUseCaseImpl) persistIssued(
	ctx context.Context,
	tx shared.Tx,
	q *queue.Queue,
	alloc queue.Allocation,
	contact customer.Contact,
	manual bool,
	now time.Time,
) (*IssueTicketResult, error) {
	t, err := ticket.New(ticket.IssueParams{
		QueueID:       q.ID(),
		BusinessID:    q.BusinessID(),
		Number:        alloc.Number,
		OperatingDate: q.OperatingDate(),
		Position:      alloc.Position,
		EstimatedWait: alloc.EstimatedWaitMinutes,
		Customer:      contact,
		IsManual:      manual,
	}, now)
	if err != nil {
		return nil, classify(err)
	}
	if err = tx.Tickets().Create(ctx, tx.DB(), t); err != nil {
		return nil, err
	}
	if err = tx.Queues().Save(ctx, tx.DB(), q, now); err != nil {
		return nil, err
	}
	err = tx.Outbox().Append(ctx, tx.DB(),
		shared.TicketEvent(shared.TopicTicketIssued, t, "", now),
		shared.QueueEvent(q, now),
	)
	if err != nil {
		return nil, err
	}
	return &IssueTicketResult{
		TicketID:             t.ID(),
		QueueID:              q.ID(),
		TicketNumber:         t.Number(),
		OperatingDate:        t.OperatingDate().String(),
		Position:             t.Position(),
		EstimatedWaitMinutes: t.EstimatedWait(),
	}, nil
}

// CallNext advances current_number to the next waiting ticket and calls it.
// Open tickets left below the new number are cancelled as skipped.
func (uc *ticketUseCaseImpl) CallNext(ctx context.Context, member staff.Member, queueID uuid.UUID) (*CallNextResult, error) {
	var result *CallNextResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Queues().LockByID(ctx, tx.DB(), queueID)
		if derr != nil {
			return notFound(derr, errs.ErrQueueNotFound)
		}
		if derr = member.Authorize(q.BusinessID()); derr != nil {
			return classify(derr)
		}
		now, derr := businessNow(ctx, uc.zones, uc.clock, q.BusinessID())
		if derr != nil {
			return derr
		}
		q.RollOver(schedule.DateOf(now))

		open, derr := tx.Tickets().LockOpenByQueue(ctx, tx.DB(), q.ID(), q.OperatingDate())
		if derr != nil {
			return derr
		}
		waiting := make(map[int]*ticket.Ticket, len(open))
		for _, t := range open {
			if t.Status() == ticket.StatusWaiting {
				waiting[t.Number()] = t
			}
		}

		var next *ticket.Ticket
		for next == nil {
			number, aerr := q.Advance()
			if aerr != nil {
				return classify(aerr)
			}
			next = waiting[number]
		}

		var events []shared.Event
		cancelled := 0
		for _, t := range open {
			switch {
			case t.Number() < next.Number():
				changed, cerr := t.Cancel(now)
				if cerr != nil {
					return classify(cerr)
				}
				if !changed {
					continue
				}
				if cerr = tx.Tickets().Update(ctx, tx.DB(), t); cerr != nil {
					return cerr
				}
				cancelled++
				events = append(events, shared.TicketEvent(shared.TopicTicketStatusChanged, t, reasonSkipped, now))
			case t == next:
				if cerr := t.Call(now); cerr != nil {
					return classify(cerr)
				}
				if cerr := tx.Tickets().Update(ctx, tx.DB(), t); cerr != nil {
					return cerr
				}
				events = append(events, shared.TicketEvent(shared.TopicTicketCalled, t, "", now))
			case t.Number() == q.AdvanceNoticeNumber(next.Number()) && t.Status() == ticket.StatusWaiting:
				events = append(events, shared.TicketEvent(shared.TopicTicketAdvanceNotice, t, reasonAdvanceNotice, now))
			}
		}

		if derr = tx.Queues().Save(ctx, tx.DB(), q, now); derr != nil {
			return derr
		}
		events = append(events, shared.QueueEvent(q, now))
		if derr = tx.Outbox().Append(ctx, tx.DB(), events...); derr != nil {
			return derr
		}

		result = &CallNextResult{
			TicketID:      next.ID(),
			TicketNumber:  next.Number(),
			CurrentNumber: q.CurrentNumber(),
			Cancelled:     cancelled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ticketUseCaseImpl) Start(ctx context.Context, member staff.Member, ticketID uuid.UUID) error {
	return uc.staffTransition(ctx, member, ticketID, func(t *ticket.Ticket, now time.Time) (bool, error) {
		return true, t.StartServing(now)
	})
}

func (uc *ticketUseCaseImpl) Complete(ctx context.Context, member staff.Member, ticketID uuid.UUID) error {
	return uc.staffTransition(ctx, member, ticketID, func(t *ticket.Ticket, now time.Time) (bool, error) {
		return true, t.Complete(now)
	})
}

func (uc *ticketUseCaseImpl) Cancel(ctx context.Context, member staff.Member, ticketID uuid.UUID) error {
	return uc.staffTransition(ctx, member, ticketID, func(t *ticket.Ticket, now time.Time) (bool, error) {
		return t.Cancel(now)
	})
}

func (uc *ticketUseCaseImpl) staffTransition(
	ctx context.Context,
	member staff.Member,
	ticketID uuid.UUID,
	apply func(t *ticket.Ticket, now time.Time) (bool, error),
) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, derr := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if derr != nil {
			return notFound(derr, errs.ErrTicketNotFound)
		}
		if derr = member.Authorize(t.BusinessID()); derr != nil {
			return classify(derr)
		}
		return uc.saveTransition(ctx, tx, t, reasonStaff, now, apply)
	})
}

func (uc *ticketUseCaseImpl) CustomerCancel(ctx context.Context, ticketID uuid.UUID, email string) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, derr := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if derr != nil {
			return notFound(derr, errs.ErrTicketNotFound)
		}
		return uc.saveTransition(ctx, tx, t, reasonCustomer, now, func(t *ticket.Ticket, now time.Time) (bool, error) {
			return t.CancelBy(email, now)
		})
	})
}

func (uc *ticketUseCaseImpl) saveTransition(
	ctx context.Context,
	tx shared.Tx,
	t *ticket.Ticket,
	reason string,
	now time.Time,
	apply func(t *ticket.Ticket, now time.Time) (bool, error),
) error {
	changed, err := apply(t, now)
	if err != nil {
		return classify(err)
	}
	if !changed {
		return nil
	}
	if err = tx.Tickets().Update(ctx, tx.DB(), t); err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, tx.DB(), shared.TicketEvent(shared.TopicTicketStatusChanged, t, reason, now))
}

func (uc *ticketUseCaseImpl) Rate(ctx context.Context, ticketID uuid.UUID, req RateRequest) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, derr := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if derr != nil {
			return notFound(derr, errs.ErrTicketNotFound)
		}
		if derr = t.Rate(req.Email, req.Rating, req.Feedback, now); derr != nil {
			return classify(derr)
		}
		return tx.Tickets().Update(ctx, tx.DB(), t)
	})
}
