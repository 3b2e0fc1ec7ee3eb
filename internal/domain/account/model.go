package account

import (
	"time"

	ierr "github.com/openshop/storefront/internal/errors"
)

// User is the shopper profile held by the storefront backend
type User struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURI string `json:"avatar_uri"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Birthday  string `json:"birthday"`
	About     string `json:"about"`
}

// BirthdayLayout is how birthdays are exchanged with the backend
const BirthdayLayout = "2006-01-02"

// AgeOn returns the number of completed years between birthday and today
func AgeOn(birthday, today time.Time) int {
	age := today.Year() - birthday.Year()
	if today.Month() < birthday.Month() ||
		(today.Month() == birthday.Month() && today.Day() < birthday.Day()) {
		age--
	}
	return age
}

// Details carries the profile fields a shopper wants to change; nil fields are left alone
type Details struct {
	Name      *string
	Gender    *string
	Birthday  *string
	About     *string
	AvatarURI *string
}

// DetailsUpdate is the parallel field/value list the backend's update endpoint expects
type DetailsUpdate struct {
	Fields []string      `json:"field"`
	Values []interface{} `json:"value"`
}

func (u *DetailsUpdate) add(field string, value interface{}) {
	u.Fields = append(u.Fields, field)
	u.Values = append(u.Values, value)
}

// IsEmpty reports whether the update changes nothing
func (u *DetailsUpdate) IsEmpty() bool {
	return len(u.Fields) == 0
}

// NewDetailsUpdate builds the backend update for the given changes. A new
// birthday also refreshes the stored age as of today.
func NewDetailsUpdate(d Details, today time.Time) (*DetailsUpdate, error) {
	update := &DetailsUpdate{}
	if d.Name != nil {
		update.add("name", *d.Name)
	}
	if d.Gender != nil {
		update.add("gender", *d.Gender)
	}
	if d.About != nil {
		update.add("about", *d.About)
	}
	if d.AvatarURI != nil {
		update.add("avatar_uri", *d.AvatarURI)
	}
	if d.Birthday != nil {
		birthday, err := time.Parse(BirthdayLayout, *d.Birthday)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Birthday must be formatted as %s", BirthdayLayout).
				Mark(ierr.ErrValidation)
		}
		if birthday.After(today) {
			return nil, ierr.NewError("birthday is in the future").
				WithHint("Birthday cannot be in the future").
				Mark(ierr.ErrValidation)
		}
		update.add("birthday", *d.Birthday)
		update.add("age", AgeOn(birthday, today))
	}
	return update, nil
}
