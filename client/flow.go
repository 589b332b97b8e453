package client

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// FlowState is where the booking widget currently is.
type FlowState string

const (
	StateInput     FlowState = "input"
	StateChecking  FlowState = "checking"
	StateAvailable FlowState = "available"
	StateFull      FlowState = "full"
)

var ErrFlowDatesRequired = errors.New("Please select Check-in and Check-out dates.")

// AvailabilityFlow drives the hotel page's check-then-book widget:
//
//	input -> checking -> available | full
//
// ChangeDates returns to input but keeps the chosen dates so the guest can
// tweak rather than retype them.
type AvailabilityFlow struct {
	mu       sync.Mutex
	client   *Client
	hotelID  uint
	checkIn  string
	checkOut string
	state    FlowState
}

func NewAvailabilityFlow(c *Client, hotelID uint) *AvailabilityFlow {
	return &AvailabilityFlow{client: c, hotelID: hotelID, state: StateInput}
}

func (f *AvailabilityFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *AvailabilityFlow) Dates() (checkIn, checkOut string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkIn, f.checkOut
}

func (f *AvailabilityFlow) SetDates(checkIn, checkOut string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkIn = strings.TrimSpace(checkIn)
	f.checkOut = strings.TrimSpace(checkOut)
}

// Check asks the API whether the hotel can take the stay. Missing dates are
// rejected locally without a request, and any transport or server error
// drops the flow back to input.
func (f *AvailabilityFlow) Check(ctx context.Context) (FlowState, error) {
	f.mu.Lock()
	if f.checkIn == "" || f.checkOut == "" {
		f.state = StateInput
		f.mu.Unlock()
		return StateInput, ErrFlowDatesRequired
	}
	hotelID, checkIn, checkOut := f.hotelID, f.checkIn, f.checkOut
	f.state = StateChecking
	f.mu.Unlock()

	available, err := f.client.CheckAvailability(ctx, hotelID, checkIn, checkOut)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateInput
		return StateInput, err
	}
	if available {
		f.state = StateAvailable
	} else {
		f.state = StateFull
	}
	return f.state, nil
}

// ChangeDates reopens the date inputs. The previously chosen dates stay.
func (f *AvailabilityFlow) ChangeDates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateInput
}

// Book places the booking once availability has been confirmed. It refuses
// from any other state so a stale "available" answer cannot be reused after
// the dates change.
func (f *AvailabilityFlow) Book(ctx context.Context, guests, rooms int) (Booking, error) {
	f.mu.Lock()
	if f.state != StateAvailable {
		f.mu.Unlock()
		return Booking{}, errors.New("availability not confirmed for these dates")
	}
	req := BookingRequest{
		HotelID:        f.hotelID,
		CheckIn:        f.checkIn,
		CheckOut:       f.checkOut,
		NumberOfGuests: guests,
		RoomsBooked:    rooms,
	}
	f.mu.Unlock()

	return f.client.CreateBooking(ctx, req)
}
