package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

func TestDonationHandler_List_IncludesAggregates(t *testing.T) {
	pid := "p1"
	stub := &stubDonationService{
		listFn: func(ctx context.Context) (*ports.DonationList, error) {
			return &ports.DonationList{
				Items: []domain.Donation{
					{
						ID:        "d1",
						DonorName: "Carlos",
						Amount:    500,
						Type:      domain.DonationMonetary,
						Date:      time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
						ProjectID: &pid,
					},
					{
						ID:          "d2",
						DonorName:   "Lucía",
						Description: "Ropa de abrigo",
						Type:        domain.DonationInKind,
						Date:        time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
					},
				},
				MonetaryTotal: 500,
				InKindCount:   1,
			}, nil
		},
	}
	h := NewDonationHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/donations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["monetary_total"] != float64(500) || resp["in_kind_count"] != float64(1) {
		t.Fatalf("unexpected aggregates: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 donations, got %+v", resp["data"])
	}
	first := data[0].(map[string]any)
	if first["project_id"] != "p1" {
		t.Fatalf("expected project reference preserved: %+v", first)
	}
	second := data[1].(map[string]any)
	if _, present := second["project_id"]; present {
		t.Fatalf("general-fund donation must omit project_id: %+v", second)
	}
}

func TestDonationHandler_Create_OmittedDateIsZero(t *testing.T) {
	stub := &stubDonationService{
		createFn: func(ctx context.Context, input ports.CreateDonationInput) (*domain.Donation, error) {
			if !input.Date.IsZero() {
				t.Fatalf("expected zero date when omitted, got %v", input.Date)
			}
			return &domain.Donation{
				ID:        "d-new",
				DonorName: input.DonorName,
				Amount:    input.Amount,
				Type:      input.Type,
				Date:      time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewDonationHandler(stub)

	body := `{"donor_name":"Marta","amount":300,"type":"MONETARIA"}`
	c, rec := newTestContext(http.MethodPost, "/v1/donations", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["date"] != "2025-06-15" {
		t.Fatalf("expected service-assigned date, got %v", resp["date"])
	}
}

func TestDonationHandler_Create_ParsesExplicitDate(t *testing.T) {
	stub := &stubDonationService{
		createFn: func(ctx context.Context, input ports.CreateDonationInput) (*domain.Donation, error) {
			want := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
			if !input.Date.Equal(want) {
				t.Fatalf("expected %v, got %v", want, input.Date)
			}
			return &domain.Donation{ID: "d-new", Date: input.Date, Type: input.Type}, nil
		},
	}
	h := NewDonationHandler(stub)

	body := `{"donor_name":"Marta","amount":300,"type":"MONETARIA","date":"2025-02-03"}`
	c, _ := newTestContext(http.MethodPost, "/v1/donations", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestDonationHandler_Create_Rejections(t *testing.T) {
	stub := &stubDonationService{
		createFn: func(ctx context.Context, input ports.CreateDonationInput) (*domain.Donation, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewDonationHandler(stub)

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "malformed json",
			body: "{",
			want: http.StatusBadRequest,
		},
		{
			name: "unknown type",
			body: `{"donor_name":"Marta","amount":10,"type":"CRYPTO"}`,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "negative amount",
			body: `{"donor_name":"Marta","amount":-5,"type":"MONETARIA"}`,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "bad date",
			body: `{"donor_name":"Marta","amount":10,"type":"MONETARIA","date":"03-02-2025"}`,
			want: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/v1/donations", tc.body)
			if code := httpCode(h.Create(c)); code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, code)
			}
		})
	}
}
