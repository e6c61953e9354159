package payment

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/tests"
)

type failingGateway struct{}

func (failingGateway) Charge(context.Context, course.Course) error {
	return errors.New("card declined")
}

func TestMockGateway_Charge(t *testing.T) {
	assert.NoError(t, MockGateway{}.Charge(context.Background(), course.Course{}))
	assert.NoError(t, MockGateway{Delay: time.Millisecond}.Charge(context.Background(), course.Course{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, MockGateway{Delay: time.Hour}.Charge(ctx, course.Course{}), context.Canceled)
}

func TestService_Checkout(t *testing.T) {
	price := 49.99
	paid := course.Course{ID: 6, Price: &price}

	tests := []struct {
		name      string
		gateway   Gateway
		course    course.Course
		wantErr   string
		wantEvent bool
	}{
		{name: "paid course", gateway: MockGateway{}, course: paid, wantEvent: true},
		{name: "free course", gateway: MockGateway{}, course: course.Course{ID: 1}, wantErr: "course is free"},
		{name: "declined", gateway: failingGateway{}, course: paid, wantErr: "charging: card declined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.gateway, testutil.NewLogger(t))
			var got []int
			err := svc.Checkout(context.Background(), tt.course, func(_ context.Context, courseID int) error {
				got = append(got, courseID)
				return nil
			})
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []int{tt.course.ID}, got)
		})
	}
}
