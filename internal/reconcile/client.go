// internal/reconcile/client.go
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rywndr/AfiDu/internal/allocation"
)

// Client talks to the payment persistence service. It issues the read-only
// history fetch when an edit session opens and the final submission when
// the user saves. Both calls run on their own goroutine and report back
// through a callback, so the editing flow is never blocked.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient wires a client against the service base URL. httpClient may be
// nil; timeouts and retries belong to the transport, not to this engine.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// HistoryRecord is one settled installment as stored server-side. It is a
// read-only ledger entry and is never edited locally.
type HistoryRecord struct {
	Number int    `json:"number"`
	Amount int64  `json:"amount"`
	Date   string `json:"date"`
}

// HistoryResult is the service's answer to a history fetch.
type HistoryResult struct {
	Success bool             `json:"success"`
	Records []HistoryRecord  `json:"installmentRecords"`
	Details map[string]int64 `json:"installmentDetails"`
	Message string           `json:"message,omitempty"`
}

// OrderedAmounts flattens the "installment_<n>" detail map into a dense
// slice of count amounts; positions without a stored detail stay 0.
func (r HistoryResult) OrderedAmounts(count int) []int64 {
	if count <= 0 || len(r.Details) == 0 {
		return nil
	}
	amounts := make([]int64, count)
	for n := 1; n <= count; n++ {
		amounts[n-1] = r.Details[fmt.Sprintf("installment_%d", n)]
	}
	return amounts
}

// SubmitResult is the service's answer to a submission, including its
// canonical new totals.
type SubmitResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	AmountPaid      int64  `json:"amountPaid"`
	RemainingAmount int64  `json:"remainingAmount"`
	Paid            bool   `json:"paid"`
}

// LoadHistory hydrates the session's allocation with stored installment
// amounts. A failed fetch, or a response without detail, seeds the equal
// split instead: hilangnya detail menurunkan kualitas, tapi tidak boleh
// memblokir sesi edit. Responses for a session that has since closed are
// discarded via the generation marker. onDone, if set, runs after the
// seed decision with whatever the service answered.
func (c *Client) LoadHistory(ctx context.Context, s *allocation.Session, onDone func(HistoryResult, error)) {
	gen := s.Generation
	obligationID := s.Alloc.Obligation.ID
	count := s.Alloc.Obligation.PriorInstallmentCount

	go func() {
		res, err := c.fetchHistory(ctx, obligationID)
		if err != nil || !res.Success {
			if err != nil {
				slog.Warn("installment history fetch failed, falling back to equal split",
					"obligation_id", obligationID, "error", err)
			}
			s.ApplySeed(gen, nil, false)
		} else {
			s.ApplySeed(gen, res.OrderedAmounts(count), true)
		}
		if onDone != nil {
			onDone(res, err)
		}
	}()
}

// Submit validates the session's allocation, projects it (a strictly
// partial single payment becomes a one-installment record) and posts it.
// A validation error is returned synchronously and no request is made. On
// an accepted submission the session is committed; on a rejected or failed
// one it stays open, unmodified, for the user to retry or cancel.
func (c *Client) Submit(ctx context.Context, s *allocation.Session, onDone func(SubmitResult, error)) error {
	if s.Closed() {
		return allocation.ErrSessionClosed
	}
	if err := s.Alloc.ValidateForSubmit(); err != nil {
		return err
	}
	sub := s.Alloc.ProjectSubmission()

	go func() {
		res, err := c.postSubmission(ctx, sub)
		if err == nil && res.Success {
			s.Commit()
		}
		if onDone != nil {
			onDone(res, err)
		}
	}()
	return nil
}

func (c *Client) fetchHistory(ctx context.Context, obligationID uint) (HistoryResult, error) {
	url := fmt.Sprintf("%s/api/payments/%d/installments", c.baseURL, obligationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return HistoryResult{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HistoryResult{}, err
	}
	defer resp.Body.Close()

	var res HistoryResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return HistoryResult{}, err
	}
	return res, nil
}

func (c *Client) postSubmission(ctx context.Context, sub allocation.Submission) (SubmitResult, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return SubmitResult{}, err
	}

	url := fmt.Sprintf("%s/api/payments/%d", c.baseURL, sub.ObligationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return SubmitResult{}, err
	}
	defer resp.Body.Close()

	var res SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return SubmitResult{}, err
	}
	return res, nil
}
