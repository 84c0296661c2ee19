package indicator

import "github.com/san-kum/attiview/internal/storage"

// Recorder keeps the samples of accepted ticks for later storage. A
// positive limit keeps only the most recent records.
type Recorder struct {
	limit   int
	records []storage.Record
}

func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Observe(f Frame) {
	r.records = append(r.records, storage.Record{TMs: f.TMs, Sample: f.Sample, Attitude: f.Attitude})
	if r.limit > 0 && len(r.records) > r.limit {
		r.records = r.records[len(r.records)-r.limit:]
	}
}

func (r *Recorder) Records() []storage.Record { return r.records }
func (r *Recorder) Len() int                  { return len(r.records) }
func (r *Recorder) Reset()                    { r.records = r.records[:0] }
