package scheduling

import (
	"context"
	"sync"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository. MarkSlotBooked
// keeps the conditional-update semantics of the Mongo implementation: it only
// flips a slot that is currently unbooked, under a single lock, so concurrent
// callers race exactly like they would against the store.
type fakeAvailabilityRepo struct {
	mu   sync.Mutex
	docs map[string]*models.DoctorAvailability // keyed by document ID
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{docs: make(map[string]*models.DoctorAvailability)}
}

func (r *fakeAvailabilityRepo) byDoctor(doctorID string) *models.DoctorAvailability {
	for _, doc := range r.docs {
		if doc.DoctorID == doctorID {
			return doc
		}
	}
	return nil
}

func (r *fakeAvailabilityRepo) UpsertDay(ctx context.Context, doctorID string, day models.AvailabilityDay) (*models.DoctorAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.byDoctor(doctorID)
	if doc == nil {
		doc = &models.DoctorAvailability{ID: "avail-" + doctorID, DoctorID: doctorID}
		r.docs[doc.ID] = doc
	}
	for i := range doc.Days {
		if doc.Days[i].Date == day.Date {
			doc.Days[i].Slots = append(doc.Days[i].Slots, day.Slots...)
			return copyDoc(doc), nil
		}
	}
	doc.Days = append(doc.Days, day)
	return copyDoc(doc), nil
}

func (r *fakeAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.DoctorAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return copyDoc(doc), nil
}

func (r *fakeAvailabilityRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.DoctorAvailability
	for _, doc := range r.docs {
		if doc.DoctorID == doctorID {
			out = append(out, *copyDoc(doc))
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) FindSlot(ctx context.Context, doctorID, date, startTime, endTime string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.byDoctor(doctorID)
	if doc == nil {
		return nil, mongo.ErrNoDocuments
	}
	for _, day := range doc.Days {
		if day.Date != date {
			continue
		}
		for _, slot := range day.Slots {
			if slot.StartTime == startTime && slot.EndTime == endTime {
				s := slot
				return &s, nil
			}
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAvailabilityRepo) MarkSlotBooked(ctx context.Context, doctorID, date, slotID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.byDoctor(doctorID)
	if doc == nil {
		return false, nil
	}
	for di := range doc.Days {
		if doc.Days[di].Date != date {
			continue
		}
		for si := range doc.Days[di].Slots {
			s := &doc.Days[di].Slots[si]
			if s.ID == slotID && !s.IsBooked {
				s.IsBooked = true
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *fakeAvailabilityRepo) ReleaseSlot(ctx context.Context, doctorID, date, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.byDoctor(doctorID)
	if doc == nil {
		return nil
	}
	for di := range doc.Days {
		if doc.Days[di].Date != date {
			continue
		}
		for si := range doc.Days[di].Slots {
			if doc.Days[di].Slots[si].ID == slotID {
				doc.Days[di].Slots[si].IsBooked = false
			}
		}
	}
	return nil
}

func (r *fakeAvailabilityRepo) ReplaceDays(ctx context.Context, id string, days []models.AvailabilityDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	doc.Days = days
	return nil
}

func (r *fakeAvailabilityRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.docs, id)
	return nil
}

func copyDoc(doc *models.DoctorAvailability) *models.DoctorAvailability {
	out := *doc
	out.Days = make([]models.AvailabilityDay, len(doc.Days))
	for i, day := range doc.Days {
		out.Days[i] = day
		out.Days[i].Slots = append([]models.Slot(nil), day.Slots...)
	}
	return &out
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	failNext bool // next Create returns an error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failNext {
		r.failNext = false
		return errInsertFailed
	}
	b := *booking
	r.bookings[b.ID] = &b
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	b.Status = status
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) DeleteByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(r.bookings, id)
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.DoctorID == doctorID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.PatientID == patientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

// fakeAccountRepo is an in-memory AccountRepository covering only what the
// scheduling service reads.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func newFakeAccountRepo(accounts ...*models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[string]*models.Account)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *a
	return &out, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Account
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAccountRepo) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeAccountRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.accounts, id)
	return nil
}
