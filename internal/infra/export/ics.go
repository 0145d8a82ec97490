package export

import (
	"io"

	ical "github.com/arran4/golang-ical"

	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/queries"
)

const productID = "-//venue-desk//Operator Desk//RU"

type ICSEncoder struct {
	clock clock.Clock
}

func NewICSEncoder(clk clock.Clock) *ICSEncoder {
	return &ICSEncoder{clock: clk}
}

func (e *ICSEncoder) ContentType() string {
	return "text/calendar; charset=utf-8"
}

func (e *ICSEncoder) EncodeCalendar(w io.Writer, name string, entries []queries.CalendarEntry) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)
	cal.SetXWRCalName(name)

	stamp := e.clock.Now().UTC()
	for _, entry := range entries {
		ev := cal.AddEvent(entry.UID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(entry.Start.UTC())
		ev.SetEndAt(entry.End.UTC())
		ev.SetSummary(entry.Summary)
		if entry.Description != "" {
			ev.SetDescription(entry.Description)
		}
		if entry.Location != "" {
			ev.SetLocation(entry.Location)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return errs.Wrapf(err, "failed to write calendar %q", name)
	}
	return nil
}
