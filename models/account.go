package models

import "time"

// Role tags an account as student, tutor or admin.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

// Account is a platform user. Student and tutor attributes share one record, keyed by Role.
type Account struct {
	ID        string     `json:"id" bson:"id"`
	Role      Role       `json:"role" bson:"role"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Password  string     `json:"password,omitempty" bson:"password,omitempty"` // bcrypt hash
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`

	// Student attributes.
	Track          string   `json:"track,omitempty" bson:"track,omitempty"`
	Bio            string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Interests      []string `json:"interests,omitempty" bson:"interests,omitempty"`
	FavoriteTutors []string `json:"favoritesTutors,omitempty" bson:"favoritesTutors,omitempty"`
	Balance        float64  `json:"balance,omitempty" bson:"balance,omitempty"`
	TotalSpent     float64  `json:"totalSpent,omitempty" bson:"totalSpent,omitempty"`

	// Tutor attributes.
	University       string   `json:"university,omitempty" bson:"university,omitempty"`
	Major            string   `json:"major,omitempty" bson:"major,omitempty"`
	Year             string   `json:"year,omitempty" bson:"year,omitempty"`
	TeachingSubjects []string `json:"teachingSubjects,omitempty" bson:"teachingSubjects,omitempty"`
	HourlyRate       float64  `json:"hourlyRate,omitempty" bson:"hourlyRate,omitempty"`
	TutorBio         string   `json:"tutorBio,omitempty" bson:"tutorBio,omitempty"`
	Availability     []string `json:"availability,omitempty" bson:"availability,omitempty"`
	Approved         bool     `json:"approved,omitempty" bson:"approved,omitempty"`
	Rating           float64  `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewsCount     int      `json:"reviewsCount,omitempty" bson:"reviewsCount,omitempty"`
	TotalEarnings    float64  `json:"totalEarnings,omitempty" bson:"totalEarnings,omitempty"`
	StudentsCount    int      `json:"studentsCount,omitempty" bson:"studentsCount,omitempty"`

	CompletedSessions int `json:"completedSessions,omitempty" bson:"completedSessions,omitempty"`
}

// Public returns a copy safe to send to clients.
func (a Account) Public() Account {
	a.Password = ""
	return a
}

// IsTutor reports whether the account is a tutor.
func (a Account) IsTutor() bool { return a.Role == RoleTutor }

// IsStudent reports whether the account is a student.
func (a Account) IsStudent() bool { return a.Role == RoleStudent }

// PublicAccounts strips credentials from every account.
func PublicAccounts(accounts []Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = a.Public()
	}
	return out
}

// RegisterRequest is the payload accepted by account registration.
type RegisterRequest struct {
	Role      Role     `json:"role" validate:"required,oneof=student tutor"`
	Name      string   `json:"name" validate:"required,min=2,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required,egphone"`
	Password  string   `json:"password" validate:"required,min=8,max=72"`
	Track     string   `json:"track,omitempty" validate:"max=100"`
	Bio       string   `json:"bio,omitempty" validate:"max=1000"`
	Interests []string `json:"interests,omitempty"`

	University       string   `json:"university,omitempty" validate:"max=100"`
	Major            string   `json:"major,omitempty" validate:"max=100"`
	Year             string   `json:"year,omitempty" validate:"max=50"`
	TeachingSubjects []string `json:"teachingSubjects,omitempty"`
	HourlyRate       float64  `json:"hourlyRate,omitempty" validate:"gte=0"`
	TutorBio         string   `json:"tutorBio,omitempty" validate:"max=2000"`
	Availability     []string `json:"availability,omitempty"`
}

// LoginRequest identifies an account by email or phone.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Method     string `json:"method" validate:"omitempty,oneof=email phone"`
}

// AccountPatch carries the self-service profile fields a caller may change.
type AccountPatch struct {
	Name      *string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email     *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,egphone"`
	Track     *string   `json:"track,omitempty" validate:"omitempty,max=100"`
	Bio       *string   `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Interests *[]string `json:"interests,omitempty"`

	University       *string   `json:"university,omitempty" validate:"omitempty,max=100"`
	Major            *string   `json:"major,omitempty" validate:"omitempty,max=100"`
	Year             *string   `json:"year,omitempty" validate:"omitempty,max=50"`
	TeachingSubjects *[]string `json:"teachingSubjects,omitempty"`
	HourlyRate       *float64  `json:"hourlyRate,omitempty" validate:"omitempty,gte=0"`
	TutorBio         *string   `json:"tutorBio,omitempty" validate:"omitempty,max=2000"`
	Availability     *[]string `json:"availability,omitempty"`
}

// Fields returns the set fields keyed by their stored names.
func (p AccountPatch) Fields() map[string]any {
	fields := map[string]any{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setList := func(key string, v *[]string) {
		if v != nil {
			fields[key] = *v
		}
	}

	setString("name", p.Name)
	setString("email", p.Email)
	setString("phone", p.Phone)
	setString("track", p.Track)
	setString("bio", p.Bio)
	setList("interests", p.Interests)
	setString("university", p.University)
	setString("major", p.Major)
	setString("year", p.Year)
	setList("teachingSubjects", p.TeachingSubjects)
	if p.HourlyRate != nil {
		fields["hourlyRate"] = *p.HourlyRate
	}
	setString("tutorBio", p.TutorBio)
	setList("availability", p.Availability)
	return fields
}

// ApprovalRequest toggles a tutor's approval flag.
type ApprovalRequest struct {
	Approved bool `json:"approved"`
}
