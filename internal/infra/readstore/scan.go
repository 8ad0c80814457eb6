package readstore

import (
	"lng-loading/internal/domain/timeofday"

	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

func formatDate(d pgtype.Date) string {
	return d.Time.Format(dateLayout)
}

func formatTime(t pgtype.Time) string {
	return timeofday.FromMicroseconds(t.Microseconds).String()
}
