package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
)

func newFeedService(ctrl *gomock.Controller, samples bool) (*activity.Service, *activity.MockCollectionReader, *activity.MockOrderReader) {
	collections := activity.NewMockCollectionReader(ctrl)
	orders := activity.NewMockOrderReader(ctrl)

	svc := activity.NewService(collections, orders, activity.Options{
		Cap:              10,
		CollectionsLimit: 5,
		OrdersLimit:      10,
		SampleActivity:   samples,
		Now:              func() time.Time { return now },
	}, nil)

	return svc, collections, orders
}

func TestService_Feed(t *testing.T) {
	type testCase struct {
		name      string
		role      account.Role
		samples   bool
		setupMock func(c *activity.MockCollectionReader, o *activity.MockOrderReader)
		wantLen   int
		wantSynth bool
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			role: account.RoleIndividual,
			setupMock: func(c *activity.MockCollectionReader, o *activity.MockOrderReader) {
				c.EXPECT().ListByUser(gomock.Any(), "u1", 5).
					Return([]*collection.Collection{{ID: "c1", Date: at(4)}}, nil)
				o.EXPECT().ListByBuyer(gomock.Any(), "u1", 10).
					Return([]*order.Order{{ID: "o1", CreatedAt: at(1)}, {ID: "o2", CreatedAt: at(9)}}, nil)
			},
			wantLen: 3,
		},
		{
			name: "EmptyWithoutSamples",
			role: account.RoleIndividual,
			setupMock: func(c *activity.MockCollectionReader, o *activity.MockOrderReader) {
				c.EXPECT().ListByUser(gomock.Any(), "u1", 5).Return(nil, nil)
				o.EXPECT().ListByBuyer(gomock.Any(), "u1", 10).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name:    "EmptyIndividualWithSamples",
			role:    account.RoleIndividual,
			samples: true,
			setupMock: func(c *activity.MockCollectionReader, o *activity.MockOrderReader) {
				c.EXPECT().ListByUser(gomock.Any(), "u1", 5).Return(nil, nil)
				o.EXPECT().ListByBuyer(gomock.Any(), "u1", 10).Return(nil, nil)
			},
			wantLen:   3,
			wantSynth: true,
		},
		{
			name:    "EmptyBusinessNeverGetsSamples",
			role:    account.RoleBusiness,
			samples: true,
			setupMock: func(c *activity.MockCollectionReader, o *activity.MockOrderReader) {
				c.EXPECT().ListByUser(gomock.Any(), "u1", 5).Return(nil, nil)
				o.EXPECT().ListByBuyer(gomock.Any(), "u1", 10).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name:    "OrderReadFails",
			role:    account.RoleIndividual,
			samples: true,
			setupMock: func(c *activity.MockCollectionReader, o *activity.MockOrderReader) {
				c.EXPECT().ListByUser(gomock.Any(), "u1", 5).Return(nil, nil).AnyTimes()
				o.EXPECT().ListByBuyer(gomock.Any(), "u1", 10).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, c, o := newFeedService(ctrl, tt.samples)
			tt.setupMock(c, o)

			got, err := svc.Feed(context.Background(), account.Identity{UserID: "u1", Role: tt.role})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)

			for _, it := range got {
				assert.Equal(t, tt.wantSynth, it.Synthetic)
			}
		})
	}
}

func TestWithSamples_RespectsLimit(t *testing.T) {
	got := activity.WithSamples([]activity.Item{}, account.RoleIndividual, true, 2, now)
	assert.Len(t, got, 2)

	real := []activity.Item{{Kind: activity.KindOrder}}
	assert.Equal(t, real, activity.WithSamples(real, account.RoleIndividual, true, 2, now))
}
