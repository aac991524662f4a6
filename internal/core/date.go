package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const CalendarDateLayout = "2006-01-02"

var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// CalendarDate 以 UTC 為準的日曆日。
// 儲存與序列化皆為 ISO-8601（YYYY-MM-DD），字串排序等同日期排序。
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf 取時間點在 UTC 的日期
func DateOf(t time.Time) CalendarDate {
	u := t.UTC()
	return CalendarDate{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

func Today() CalendarDate {
	return DateOf(time.Now())
}

// ParseCalendarDate 嚴格解析 YYYY-MM-DD，格式不符一律回傳 ErrInvalidCalendarDate
func ParseCalendarDate(value string) (CalendarDate, error) {
	parsed, err := time.Parse(CalendarDateLayout, strings.TrimSpace(value))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, value)
	}
	return DateOf(parsed), nil
}

func MustParseCalendarDate(value string) CalendarDate {
	date, err := ParseCalendarDate(value)
	if err != nil {
		panic(err)
	}
	return date
}

func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time 當日 00:00 UTC
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) AddDays(days int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, days))
}

func (d CalendarDate) Compare(other CalendarDate) int {
	return d.Time().Compare(other.Time())
}

func (d CalendarDate) Before(other CalendarDate) bool { return d.Compare(other) < 0 }
func (d CalendarDate) After(other CalendarDate) bool  { return d.Compare(other) > 0 }

func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(CalendarDateLayout)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBSONValue 以字串存入 MongoDB，讓區間查詢可直接比較
func (d CalendarDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

func (d *CalendarDate) UnmarshalBSONValue(valueType bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: valueType, Value: data}
	switch valueType {
	case bsontype.String:
		return d.UnmarshalText([]byte(raw.StringValue()))
	case bsontype.Null, bsontype.Undefined:
		*d = CalendarDate{}
		return nil
	case bsontype.DateTime:
		*d = DateOf(raw.Time())
		return nil
	default:
		return fmt.Errorf("%w: unexpected bson type %s", ErrInvalidCalendarDate, valueType)
	}
}
