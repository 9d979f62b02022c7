package usecase

import "time"

// nowFunc lets tests pin the reference instant.
type nowFunc func() time.Time

var timeNow nowFunc = time.Now
