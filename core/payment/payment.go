package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/course"
)

// ErrFreeCourse is returned when checking out a course that has no price.
var ErrFreeCourse = core.NewDomainError("course is free")

// Gateway charges the price of a course.
type Gateway interface {
	Charge(ctx context.Context, c course.Course) error
}

// MockGateway always succeeds after Delay.
type MockGateway struct {
	Delay time.Duration
}

func (g MockGateway) Charge(ctx context.Context, _ course.Course) error {
	if g.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SucceededFunc reacts to a successful payment for a course.
type SucceededFunc func(ctx context.Context, courseID int) error

type Service struct {
	gateway Gateway
	log     core.Logger
}

func NewService(gateway Gateway, logger core.Logger) *Service {
	return &Service{gateway: gateway, log: logger}
}

// Checkout charges c and, on success, emits the payment succeeded event to onSucceeded.
func (svc *Service) Checkout(ctx context.Context, c course.Course, onSucceeded SucceededFunc) error {
	if !c.IsPaid() {
		return ErrFreeCourse
	}
	if err := svc.gateway.Charge(ctx, c); err != nil {
		return errors.Wrap(err, "charging")
	}
	svc.log.Info(fmt.Sprintf("payment succeeded for course %d", c.ID), map[string]interface{}{"price": *c.Price})
	return onSucceeded(ctx, c.ID)
}
