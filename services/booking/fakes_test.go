package booking

import (
	"context"
	"sync"
	"time"

	availabilityRepo "emviapp/database/repository/availability"
	bookingRepo "emviapp/database/repository/booking"
	catalogRepo "emviapp/database/repository/catalog"
	"emviapp/models"
)

// In-memory fakes for the repository and payment interfaces. The booking fake
// enforces the same active-slot uniqueness the Mongo partial index provides so
// the race-window behavior can be exercised.

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []models.Booking
	listErr   error
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for i := range f.bookings {
		existing := &f.bookings[i]
		if existing.IsActive() &&
			existing.ArtistID == b.ArtistID &&
			existing.Date == b.Date &&
			existing.Time == b.Time {
			return bookingRepo.ErrSlotTaken
		}
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) ListByArtistDate(_ context.Context, artistID, date string, statuses []string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Booking
	for i := range f.bookings {
		b := f.bookings[i]
		if b.ArtistID != artistID || b.Date != date {
			continue
		}
		if len(statuses) > 0 && !contains(statuses, b.Status) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for i := range f.bookings {
		if f.bookings[i].CustomerID == customerID {
			out = append(out, f.bookings[i])
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByArtist(_ context.Context, artistID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for i := range f.bookings {
		if f.bookings[i].ArtistID == artistID {
			out = append(out, f.bookings[i])
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, from []string, to string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID != id {
			continue
		}
		if len(from) > 0 && !contains(from, f.bookings[i].Status) {
			return nil, bookingRepo.ErrInvalidTransition
		}
		f.bookings[i].Status = to
		f.bookings[i].UpdatedAt = time.Now()
		b := f.bookings[i]
		return &b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) GetByPaymentIntent(_ context.Context, paymentIntentID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].PaymentIntentID == paymentIntentID {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) ListStalePendingPayment(_ context.Context, cutoff time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for i := range f.bookings {
		b := f.bookings[i]
		if b.Status == models.BookingStatusPendingPayment && b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type fakeAvailabilityRepo struct {
	windows    []models.AvailabilityWindow
	timeOff    []models.TimeOffPeriod
	windowsErr error
	timeOffErr error
}

func (f *fakeAvailabilityRepo) ListWindows(_ context.Context, artistID, weekday string) ([]models.AvailabilityWindow, error) {
	if f.windowsErr != nil {
		return nil, f.windowsErr
	}
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.ArtistID == artistID && w.Weekday == weekday && w.IsAvailable {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListAllWindows(_ context.Context, artistID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.ArtistID == artistID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ReplaceWindows(_ context.Context, artistID string, windows []models.AvailabilityWindow) error {
	var kept []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.ArtistID != artistID {
			kept = append(kept, w)
		}
	}
	f.windows = append(kept, windows...)
	return nil
}

func (f *fakeAvailabilityRepo) CreateTimeOff(_ context.Context, period *models.TimeOffPeriod) error {
	period.CreatedAt = time.Now()
	f.timeOff = append(f.timeOff, *period)
	return nil
}

func (f *fakeAvailabilityRepo) ListTimeOff(_ context.Context, artistID string) ([]models.TimeOffPeriod, error) {
	var out []models.TimeOffPeriod
	for _, p := range f.timeOff {
		if p.ArtistID == artistID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListTimeOffCovering(_ context.Context, artistID, date string) ([]models.TimeOffPeriod, error) {
	if f.timeOffErr != nil {
		return nil, f.timeOffErr
	}
	var out []models.TimeOffPeriod
	for i := range f.timeOff {
		p := f.timeOff[i]
		if p.ArtistID == artistID && p.Covers(date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) DeleteTimeOff(_ context.Context, id, artistID string) error {
	for i, p := range f.timeOff {
		if p.ID == id && p.ArtistID == artistID {
			f.timeOff = append(f.timeOff[:i], f.timeOff[i+1:]...)
			return nil
		}
	}
	return availabilityRepo.ErrNotFound
}

type fakeCatalogRepo struct {
	services map[string]models.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &svc, nil
}

func (f *fakeCatalogRepo) ListByArtist(_ context.Context, artistID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.ArtistID == artistID && svc.Active {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) Create(_ context.Context, svc *models.Service) error {
	f.services[svc.ID] = *svc
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []models.BookingEvent
}

func (f *fakeEventRepo) Insert(_ context.Context, event *models.BookingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event.CreatedAt = time.Now()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventRepo) ListByBooking(_ context.Context, bookingID string) ([]models.BookingEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BookingEvent
	for _, e := range f.events {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakePaymentProvider struct {
	mu         sync.Mutex
	failCreate error
	created    []models.PaymentIntentRequest
	cancelled  []string
	nextID     string
}

func (f *fakePaymentProvider) CreatePaymentIntent(_ context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	f.created = append(f.created, req)
	id := f.nextID
	if id == "" {
		id = "pi_test"
	}
	return &models.PaymentIntentRef{
		ID:          id,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Status:      "requires_confirmation",
	}, nil
}

func (f *fakePaymentProvider) CancelPaymentIntent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakePaymentProvider) cancelledIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.cancelled))
	copy(out, f.cancelled)
	return out
}
