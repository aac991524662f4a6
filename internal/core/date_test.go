package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseCalendarDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    CalendarDate
		wantErr error
	}{
		{
			name:  "標準格式",
			input: "2025-07-01",
			want:  CalendarDate{Year: 2025, Month: time.July, Day: 1},
		},
		{
			name:  "前後空白",
			input: " 2024-02-29 ",
			want:  CalendarDate{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name:    "非閏年 2/29",
			input:   "2025-02-29",
			wantErr: ErrInvalidCalendarDate,
		},
		{
			name:    "含時間",
			input:   "2025-07-01T10:00:00Z",
			wantErr: ErrInvalidCalendarDate,
		},
		{
			name:    "斜線格式",
			input:   "2025/07/01",
			wantErr: ErrInvalidCalendarDate,
		},
		{
			name:    "空字串",
			input:   "",
			wantErr: ErrInvalidCalendarDate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDateOf_UsesUTC(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	// 台北 7/2 早上 06:00 = UTC 7/1 22:00
	at := time.Date(2025, time.July, 2, 6, 0, 0, 0, taipei)
	assert.Equal(t, "2025-07-01", DateOf(at).String())
}

func TestCalendarDate_Arithmetic(t *testing.T) {
	d := MustParseCalendarDate("2024-12-31")
	assert.Equal(t, "2025-01-01", d.AddDays(1).String())
	assert.Equal(t, "2024-12-30", d.AddDays(-1).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.Equal(t, 0, d.Compare(MustParseCalendarDate("2024-12-31")))
	assert.Equal(t, "", CalendarDate{}.String())
	assert.True(t, CalendarDate{}.IsZero())
}

func TestCalendarDate_BSON(t *testing.T) {
	type doc struct {
		Date CalendarDate `bson:"date"`
	}
	raw, err := bson.Marshal(doc{Date: MustParseCalendarDate("2025-03-09")})
	require.NoError(t, err)

	// 以字串儲存
	var asString struct {
		Date string `bson:"date"`
	}
	require.NoError(t, bson.Unmarshal(raw, &asString))
	assert.Equal(t, "2025-03-09", asString.Date)

	var back doc
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, MustParseCalendarDate("2025-03-09"), back.Date)

	// 舊資料以 DateTime 儲存時取 UTC 日期
	legacy, err := bson.Marshal(bson.M{"date": time.Date(2025, time.March, 9, 23, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	var fromLegacy doc
	require.NoError(t, bson.Unmarshal(legacy, &fromLegacy))
	assert.Equal(t, "2025-03-09", fromLegacy.Date.String())
}

func TestCalendarDate_Text(t *testing.T) {
	var d CalendarDate
	require.NoError(t, d.UnmarshalText([]byte("2025-11-30")))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-11-30", string(text))
	assert.ErrorIs(t, d.UnmarshalText([]byte("30-11-2025")), ErrInvalidCalendarDate)
}
