package mocks

import (
	"context"
	"iter"

	"meeting-sync/core/calendly"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of the Calendly remote client.
type Client struct {
	mock.Mock
}

func (m *Client) GetIdentity(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Client) ListScheduledEvents(ctx context.Context, userURI string) iter.Seq2[calendly.RemoteEvent, error] {
	args := m.Called(ctx, userURI)
	if seq, ok := args.Get(0).(iter.Seq2[calendly.RemoteEvent, error]); ok {
		return seq
	}
	return func(yield func(calendly.RemoteEvent, error) bool) {}
}

func (m *Client) ListInvitees(ctx context.Context, eventID string) iter.Seq2[calendly.RemoteInvitee, error] {
	args := m.Called(ctx, eventID)
	if seq, ok := args.Get(0).(iter.Seq2[calendly.RemoteInvitee, error]); ok {
		return seq
	}
	return func(yield func(calendly.RemoteInvitee, error) bool) {}
}

// Events builds a sequence yielding the given events without errors.
func Events(events ...calendly.RemoteEvent) iter.Seq2[calendly.RemoteEvent, error] {
	return func(yield func(calendly.RemoteEvent, error) bool) {
		for _, ev := range events {
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// EventsThenError yields the given events and then a terminal error.
func EventsThenError(err error, events ...calendly.RemoteEvent) iter.Seq2[calendly.RemoteEvent, error] {
	return func(yield func(calendly.RemoteEvent, error) bool) {
		for _, ev := range events {
			if !yield(ev, nil) {
				return
			}
		}
		yield(calendly.RemoteEvent{}, err)
	}
}

// Invitees builds a sequence yielding the given invitees without errors.
func Invitees(invitees ...calendly.RemoteInvitee) iter.Seq2[calendly.RemoteInvitee, error] {
	return func(yield func(calendly.RemoteInvitee, error) bool) {
		for _, inv := range invitees {
			if !yield(inv, nil) {
				return
			}
		}
	}
}

// InviteeError builds a sequence that fails immediately.
func InviteeError(err error) iter.Seq2[calendly.RemoteInvitee, error] {
	return func(yield func(calendly.RemoteInvitee, error) bool) {
		yield(calendly.RemoteInvitee{}, err)
	}
}
