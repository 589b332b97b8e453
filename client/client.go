// Package client is a small Go consumer of the ServNex API. It mirrors the
// browser app's behavior: one attempt per call, bearer auth from a session
// store, and a single display string distilled from whatever error body the
// server returns.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Abh4y369/ServNex-App/utils"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// APIError carries the status code and the display message extracted from
// the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *SessionStore
}

// New builds a client against the given base URL. Requests are made once
// and never retried; a failed call surfaces immediately.
func New(baseURL string, sessions *SessionStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		sessions:   sessions,
	}
}

// envelope matches the server's {"success": bool, ...} wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.sessions.AccessToken()
		if token == "" {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    utils.ExtractErrorMessage(raw),
		}
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if env.Data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	AccountType string `json:"account_type"`
}

type authResponse struct {
	User struct {
		ID          uint   `json:"id"`
		AccountType string `json:"account_type"`
		Role        string `json:"role"`
	} `json:"user"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (c *Client) storeSession(a authResponse) Session {
	session := Session{
		Access:      a.Access,
		Refresh:     a.Refresh,
		UserID:      a.User.ID,
		AccountType: a.User.AccountType,
		Role:        a.User.Role,
	}
	c.sessions.Set(session)
	return session
}

func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, false, &out); err != nil {
		return Session{}, err
	}
	return c.storeSession(out), nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, false, &out); err != nil {
		return Session{}, err
	}
	return c.storeSession(out), nil
}

// Logout invalidates the refresh token server-side and clears the local
// session either way.
func (c *Client) Logout(ctx context.Context) error {
	session, ok := c.sessions.Get()
	c.sessions.Clear()
	if !ok || session.Refresh == "" {
		return nil
	}
	return c.do(ctx, http.MethodPost, "/api/auth/logout", map[string]string{"refresh": session.Refresh}, false, nil)
}

// CheckAvailability asks whether the hotel has a room for the date pair.
func (c *Client) CheckAvailability(ctx context.Context, hotelID uint, checkIn, checkOut string) (bool, error) {
	q := url.Values{}
	q.Set("check_in", checkIn)
	q.Set("check_out", checkOut)
	path := fmt.Sprintf("/api/hotels/%d/check_availability?%s", hotelID, q.Encode())

	var out struct {
		Available bool `json:"available"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, false, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

type BookingRequest struct {
	HotelID        uint   `json:"hotel_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	NumberOfGuests int    `json:"number_of_guests"`
	RoomsBooked    int    `json:"rooms_booked"`
}

type Booking struct {
	ReferenceCode  string  `json:"reference_code"`
	HotelID        uint    `json:"hotel"`
	NumberOfGuests int     `json:"number_of_guests"`
	RoomsBooked    int     `json:"rooms_booked"`
	Nights         int     `json:"nights"`
	TotalCost      float64 `json:"total_cost"`
	Status         string  `json:"status"`
}

// CreateBooking requires a signed-in session; without one no request is
// issued at all.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, true, &out); err != nil {
		return Booking{}, err
	}
	return out, nil
}

func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ReservationRequest struct {
	RestaurantID    uint   `json:"restaurant_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests"`
}

type Reservation struct {
	ReferenceCode   string  `json:"reference_code"`
	RestaurantID    uint    `json:"restaurant"`
	ReservationTime string  `json:"reservation_time"`
	NumberOfGuests  int     `json:"number_of_guests"`
	Tables          int     `json:"tables"`
	EstimatedCost   float64 `json:"estimated_cost"`
	Status          string  `json:"status"`
}

func (c *Client) CreateReservation(ctx context.Context, req ReservationRequest) (Reservation, error) {
	var out Reservation
	if err := c.do(ctx, http.MethodPost, "/api/reservations", req, true, &out); err != nil {
		return Reservation{}, err
	}
	return out, nil
}
