package dashclient

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Collection paths as served by the backend. Cache keys are rooted at
// these, so invalidating K(PathStudents) covers lists, filtered lists and
// detail entries alike.
const (
	PathStudents    = "/api/students"
	PathTeachers    = "/api/teachers"
	PathCourses     = "/api/courses"
	PathBatches     = "/api/batches"
	PathEnrollments = "/api/enrollments"
	PathAttendance  = "/api/attendance"
	PathExams       = "/api/exams"
	PathResults     = "/api/results"
	PathFees        = "/api/fees"
	PathMessages    = "/api/messages"
	PathMetrics     = "/api/dashboard/metrics"
)

type Student struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Address     *string    `json:"address,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

type Teacher struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Specialization *string   `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

type Course struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Description   *string         `json:"description,omitempty"`
	DurationWeeks *int            `json:"durationWeeks,omitempty"`
	Fee           decimal.Decimal `json:"fee"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type Batch struct {
	ID        int64      `json:"id"`
	CourseID  int64      `json:"courseId"`
	TeacherID *int64     `json:"teacherId,omitempty"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Capacity  int        `json:"capacity"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Enrollment struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"studentId"`
	BatchID        int64     `json:"batchId"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Attendance struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"studentId"`
	BatchID   int64     `json:"batchId"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Exam struct {
	ID         int64     `json:"id"`
	BatchID    int64     `json:"batchId"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	TotalMarks int       `json:"totalMarks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Result struct {
	ID            int64     `json:"id"`
	ExamID        int64     `json:"examId"`
	StudentID     int64     `json:"studentId"`
	MarksObtained int       `json:"marksObtained"`
	Grade         *string   `json:"grade,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Fee struct {
	ID        int64           `json:"id"`
	StudentID int64           `json:"studentId"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"dueDate"`
	Status    string          `json:"status"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Message struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DashboardMetrics struct {
	Students            int64           `json:"students"`
	Teachers            int64           `json:"teachers"`
	Courses             int64           `json:"courses"`
	Batches             int64           `json:"batches"`
	Enrollments         int64           `json:"enrollments"`
	AttendanceTodayRate float64         `json:"attendanceTodayRate"`
	FeesPendingTotal    decimal.Decimal `json:"feesPendingTotal"`
	FeesOverdueTotal    decimal.Decimal `json:"feesOverdueTotal"`
	MessagesUnread      int64           `json:"messagesUnread"`
}

// Enrollment, attendance and fee status values as stored by the server.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"

	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"

	FeePending = "pending"
	FeePaid    = "paid"
	FeeOverdue = "overdue"
)

// API bundles one Resource per collection over a shared client and cache.
type API struct {
	Client *Client
	Cache  *Cache

	Students    *Resource[Student]
	Teachers    *Resource[Teacher]
	Courses     *Resource[Course]
	Batches     *Resource[Batch]
	Enrollments *Resource[Enrollment]
	Attendance  *Resource[Attendance]
	Exams       *Resource[Exam]
	Results     *Resource[Result]
	Fees        *Resource[Fee]
	Messages    *Resource[Message]
}

func NewAPI(client *Client, cache *Cache) *API {
	return &API{
		Client:      client,
		Cache:       cache,
		Students:    NewResource[Student](client, cache, PathStudents),
		Teachers:    NewResource[Teacher](client, cache, PathTeachers),
		Courses:     NewResource[Course](client, cache, PathCourses),
		Batches:     NewResource[Batch](client, cache, PathBatches),
		Enrollments: NewResource[Enrollment](client, cache, PathEnrollments),
		Attendance:  NewResource[Attendance](client, cache, PathAttendance),
		Exams:       NewResource[Exam](client, cache, PathExams),
		Results:     NewResource[Result](client, cache, PathResults),
		Fees:        NewResource[Fee](client, cache, PathFees),
		Messages:    NewResource[Message](client, cache, PathMessages),
	}
}

// SubscribeMetrics attaches to the dashboard metrics endpoint. Metrics are
// computed server-side and cached there too, so invalidation here only
// forces a round trip.
func (a *API) SubscribeMetrics(onChange func(TypedSnapshot[DashboardMetrics])) (TypedSnapshot[DashboardMetrics], *Subscription) {
	fetch := func(ctx context.Context) (any, error) {
		var env envelope[DashboardMetrics]
		if err := a.Client.Get(ctx, PathMetrics, &env); err != nil {
			return nil, err
		}
		return env.Data, nil
	}
	snap, sub := a.Cache.Subscribe(K(PathMetrics), fetch, func(s Snapshot) {
		if onChange != nil {
			onChange(decodeOne[DashboardMetrics](s))
		}
	})
	return decodeOne[DashboardMetrics](snap), sub
}
