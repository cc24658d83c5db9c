package event

import "time"

// Event is one exhibition announcement extracted from a regional listing
// block. Title is never empty: blocks without a title are dropped before an
// Event is built. StartDate and EndDate are zero when the block carried no
// parseable date; every other optional field is empty (or false) when its
// pattern did not match.
type Event struct {
	Title        string    `json:"title"`
	StartDate    time.Time `json:"start_date,omitempty"`
	EndDate      time.Time `json:"end_date,omitempty"`
	Prefecture   string    `json:"prefecture,omitempty"`
	City         string    `json:"city,omitempty"`
	Venue        string    `json:"venue,omitempty"`
	Organizer    string    `json:"organizer,omitempty"`
	AdmissionFee string    `json:"admission_fee,omitempty"`
	HasSales     bool      `json:"has_sales"`
	Description  string    `json:"description"`
	ExternalURL  string    `json:"external_url,omitempty"`
	SourceRegion string    `json:"source_region"`
	SourceURL    string    `json:"source_url"`
}
