package usecase

import (
	"io"
	"testing"

	"healvista-server/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB returns a gorm handle backed by sqlmock. The repositories in
// these tests are in-memory fakes, so the only statements that reach the
// driver are transaction control.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAppointmentRepo struct {
	rows    map[uuid.UUID]*entity.Appointment
	created int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{rows: map[uuid.UUID]*entity.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	stored := *appointment
	f.rows[appointment.ID] = &stored
	f.created++
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	found := *row
	return &found, nil
}

func (f *fakeAppointmentRepo) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return f.FindByID(db, id)
}

func (f *fakeAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	row, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Status = status
	return nil
}

func (f *fakeAppointmentRepo) CountAll(db *gorm.DB) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeFeedbackRepo struct {
	rows     map[uuid.UUID]*entity.Feedback // keyed by appointment id
	doctorOf map[uuid.UUID]uuid.UUID        // appointment id -> doctor id
	created  int
	updated  int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{
		rows:     map[uuid.UUID]*entity.Feedback{},
		doctorOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeFeedbackRepo) Create(db *gorm.DB, feedback *entity.Feedback) error {
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	stored := *feedback
	f.rows[feedback.AppointmentID] = &stored
	f.created++
	return nil
}

func (f *fakeFeedbackRepo) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Feedback, error) {
	row, ok := f.rows[appointmentID]
	if !ok {
		return nil, nil
	}
	found := *row
	return &found, nil
}

func (f *fakeFeedbackRepo) FindByAppointmentIDForUpdate(db *gorm.DB, appointmentID uuid.UUID) (*entity.Feedback, error) {
	return f.FindByAppointmentID(db, appointmentID)
}

func (f *fakeFeedbackRepo) Update(db *gorm.DB, feedback *entity.Feedback) error {
	stored := *feedback
	f.rows[feedback.AppointmentID] = &stored
	f.updated++
	return nil
}

func (f *fakeFeedbackRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Feedback, error) {
	return nil, nil
}

func (f *fakeFeedbackRepo) RatingsByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]int, error) {
	var ratings []int
	for appointmentID, row := range f.rows {
		if f.doctorOf[appointmentID] == doctorID && row.Rating != nil {
			ratings = append(ratings, *row.Rating)
		}
	}
	return ratings, nil
}

type fakeDoctorProfileRepo struct {
	profiles map[uuid.UUID]*entity.DoctorProfile
}

func newFakeDoctorProfileRepo() *fakeDoctorProfileRepo {
	return &fakeDoctorProfileRepo{profiles: map[uuid.UUID]*entity.DoctorProfile{}}
}

func (f *fakeDoctorProfileRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeDoctorProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	found := *profile
	return &found, nil
}

func (f *fakeDoctorProfileRepo) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	return nil, nil
}

func (f *fakeDoctorProfileRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeDoctorProfileRepo) UpdateFeedbackScore(db *gorm.DB, userID uuid.UUID, score *float64) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	profile.FeedbackScore = score
	return nil
}

type fakePatientProfileRepo struct {
	profiles map[uuid.UUID]*entity.PatientProfile
}

func newFakePatientProfileRepo() *fakePatientProfileRepo {
	return &fakePatientProfileRepo{profiles: map[uuid.UUID]*entity.PatientProfile{}}
}

func (f *fakePatientProfileRepo) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakePatientProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	found := *profile
	return &found, nil
}

func (f *fakePatientProfileRepo) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	return nil, nil
}

func (f *fakePatientProfileRepo) SearchByName(db *gorm.DB, query string) ([]entity.PatientProfile, error) {
	return nil, nil
}

func (f *fakePatientProfileRepo) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

type fakeAuditLogRepo struct {
	entries []*entity.AuditLog
}

func newFakeAuditLogRepo() *fakeAuditLogRepo {
	return &fakeAuditLogRepo{}
}

func (f *fakeAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeAuditLogRepo) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	return nil, nil
}

func (f *fakeAuditLogRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}
