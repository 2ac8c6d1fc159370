package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/state"
)

// ErrNoBanksSelected is returned when a broadcast is requested with no
// institutions selected. The UI disables the trigger, so hitting this
// means a caller skipped the guard.
var ErrNoBanksSelected = errors.New("no banks selected for outreach")

// Demo applicant identity carried in every enquiry blast.
const (
	applicantName = "Tan Xiao Ming"
	deceasedName  = "Tan Ah Kow"
	deceasedNRIC  = "S1234567A"
)

// Sample supporting documents attached to the blast, in matching order.
var (
	sampleDocumentURLs = []string{
		"https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
		"https://pdfobject.com/pdf/sample.pdf",
		"https://unec.edu.az/application/uploads/2014/12/pdf-sample.pdf",
	}
	sampleDocumentNames = []string{
		"Death Certificate",
		"Birth Certificate",
		"NRIC",
	}
)

// blastPayload is the JSON body posted to the automation webhook.
type blastPayload struct {
	ApplicantName string   `json:"applicant_name"`
	DeceasedName  string   `json:"deceased_name"`
	DeceasedNRIC  string   `json:"deceased_nric"`
	SelectedBanks []string `json:"selected_banks"`
	DocumentURLs  []string `json:"document_urls"`
	DocumentNames []string `json:"document_names"`
}

// BroadcastResult reports the outcome of an enquiry blast. Delivered is
// false when the webhook POST failed and the blast fell back to demo mode;
// the user still sees success either way.
type BroadcastResult struct {
	Banks     int
	Delivered bool
}

// LetterService generates enquiry letters for the selected institutions
// and fires the blast webhook.
type LetterService struct {
	cfg      Config
	store    *state.Store
	http     *http.Client
	observer Observer
}

// NewLetterService creates a LetterService bound to the session store.
func NewLetterService(cfg Config, store *state.Store, observer Observer) *LetterService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &LetterService{
		cfg:      cfg,
		store:    store,
		http:     &http.Client{Timeout: cfg.PostTimeout},
		observer: observer,
	}
}

// Broadcast posts the enquiry blast for all selected banks and advances
// each not-started selection to letter-generated. Transport failures are
// observed and masked: the blast still reports success so the offline
// demo flow is never blocked by a dead endpoint.
func (s *LetterService) Broadcast(ctx context.Context) (BroadcastResult, error) {
	selected := s.store.SelectedBanks()
	if len(selected) == 0 {
		return BroadcastResult{}, ErrNoBanksSelected
	}

	names := make([]string, 0, len(selected))
	for _, b := range selected {
		names = append(names, b.Name)
	}

	payload := blastPayload{
		ApplicantName: applicantName,
		DeceasedName:  deceasedName,
		DeceasedNRIC:  deceasedNRIC,
		SelectedBanks: names,
		DocumentURLs:  sampleDocumentURLs,
		DocumentNames: sampleDocumentNames,
	}

	start := time.Now()
	err := s.post(ctx, payload)
	s.observer.Observe(ctx, Event{
		Name:     "letter_blast",
		Duration: time.Since(start),
		Success:  err == nil,
		Err:      err,
	})

	// State advances whether or not the webhook fired; the letters exist
	// locally either way.
	for _, b := range selected {
		if b.Status == domain.OutreachNotStarted {
			s.store.UpdateBankStatus(b.ID, domain.OutreachLetterGenerated)
		}
	}

	return BroadcastResult{Banks: len(selected), Delivered: err == nil}, nil
}

func (s *LetterService) post(ctx context.Context, payload blastPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling blast payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating blast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// MarkLettersSent advances every selected letter-generated bank to sent,
// once the user has posted the physical letters.
func (s *LetterService) MarkLettersSent() int {
	n := 0
	for _, b := range s.store.SelectedBanks() {
		if b.Status == domain.OutreachLetterGenerated {
			s.store.UpdateBankStatus(b.ID, domain.OutreachSent)
			n++
		}
	}
	return n
}

// DownloadLetter marks a single bank's letter as generated, for the
// per-row download action.
func (s *LetterService) DownloadLetter(bankID string) {
	for _, b := range s.store.Banks() {
		if b.ID == bankID && b.Status == domain.OutreachNotStarted {
			s.store.UpdateBankStatus(bankID, domain.OutreachLetterGenerated)
		}
	}
}
