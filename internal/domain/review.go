package domain

import "time"

// Максимальная длина комментария к отзыву
const MaxCommentLength = 200

// Review - анонимный отзыв о туалете (палец вверх/вниз)
type Review struct {
	ID          int64     `json:"id" db:"id"`
	ToiletID    int64     `json:"toilet_id" db:"toilet_id"`
	Fingerprint string    `json:"-" db:"fingerprint"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
