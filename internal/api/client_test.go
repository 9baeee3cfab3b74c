package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"bankdesk/internal/model"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL), srv
}

func TestRequestEmptyBodyIsEmptyCollection(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	raw, err := client.Request(context.Background(), http.MethodGet, "/clientes", nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("Request() = %q, want []", raw)
	}
}

func TestRequestWhitespaceBodyIsEmptyCollection(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "  \n\t ")
	})
	defer srv.Close()

	raw, err := client.Request(context.Background(), http.MethodGet, "/contas", nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("Request() = %q, want []", raw)
	}
}

func TestRequestNonOKStatusIsTransportError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.Request(context.Background(), http.MethodGet, "/clientes/99", nil)

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Request() error = %v, want *TransportError", err)
	}
	if terr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", terr.Status)
	}
}

func TestRequestUnreachableHostIsTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Request(context.Background(), http.MethodGet, "/clientes", nil)

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Request() error = %v, want *TransportError", err)
	}
	if terr.Status != 0 {
		t.Errorf("Status = %d, want 0 for connection failures", terr.Status)
	}
}

func TestRequestMalformedBodyIsDecodeError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not valid json")
	})
	defer srv.Close()

	_, err := client.Request(context.Background(), http.MethodGet, "/clientes", nil)

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Request() error = %v, want *DecodeError", err)
	}
	var terr *TransportError
	if errors.As(err, &terr) {
		t.Fatal("decode failure must not also be a transport failure")
	}
	if derr.Window == "" || !strings.Contains(derr.Window, "not valid") {
		t.Errorf("Window = %q, want surrounding raw text", derr.Window)
	}
}

func TestDecodeAndTransportMessagesDiffer(t *testing.T) {
	decodeMsg := (&DecodeError{Err: errors.New("x")}).Error()
	transportMsg := (&TransportError{URL: "u", Status: 404}).Error()
	if decodeMsg == transportMsg {
		t.Error("decode and transport errors must be distinguishable by message")
	}
}

func TestDecodeWindowIsBounded(t *testing.T) {
	long := `{"a": "` + strings.Repeat("x", 200) + `", "b": !}`
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, long)
	})
	defer srv.Close()

	_, err := client.Request(context.Background(), http.MethodGet, "/clientes", nil)

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Request() error = %v, want *DecodeError", err)
	}
	if len(derr.Window) == 0 || len(derr.Window) > 100 {
		t.Errorf("Window length = %d, want 1..100", len(derr.Window))
	}
}

func TestCreateCustomerPostsToCustomersResource(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]any

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		io.WriteString(w, `{"id": 7, "nome": "Ana", "cpf": "52998224725"}`)
	})
	defer srv.Close()

	created, err := client.CreateCustomer(context.Background(), model.Customer{
		Name: "Ana",
		CPF:  "52998224725",
	})
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/clientes" {
		t.Errorf("request = %s %s, want POST /clientes", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["nome"] != "Ana" || gotBody["cpf"] != "52998224725" {
		t.Errorf("body = %v, want nome/cpf echoed", gotBody)
	}
	if created.ID != 7 || created.Name != "Ana" {
		t.Errorf("created = %+v, want returned record", created)
	}
}

func TestApproveLoanSendsApprovedAmount(t *testing.T) {
	var gotPath string
	var gotBody map[string]json.Number

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		dec.Decode(&gotBody)
		io.WriteString(w, `{"id": 3, "statusEmprestimo": "APROVADO", "valorAprovado": 1000.00,
			"valorSolicitado": 1500, "taxaJurosMensal": 2, "numeroParcelas": 10}`)
	})
	defer srv.Close()

	loan, err := client.ApproveLoan(context.Background(), 3, decimal.NewFromFloat(1000.00))
	if err != nil {
		t.Fatalf("ApproveLoan() error = %v", err)
	}

	if gotPath != "/emprestimos/3/aprovar" {
		t.Errorf("path = %q, want /emprestimos/3/aprovar", gotPath)
	}
	if got := gotBody["valorAprovado"].String(); got != "1000" {
		t.Errorf("valorAprovado = %s, want 1000", got)
	}
	if loan.Status != model.LoanApproved {
		t.Errorf("Status = %q, want APROVADO", loan.Status)
	}
}

func TestRejectLoanSendsReason(t *testing.T) {
	var gotBody map[string]any

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"id": 4, "statusEmprestimo": "REJEITADO", "motivoRejeicao": "renda insuficiente",
			"valorSolicitado": 9000, "taxaJurosMensal": 3, "numeroParcelas": 24}`)
	})
	defer srv.Close()

	loan, err := client.RejectLoan(context.Background(), 4, "renda insuficiente")
	if err != nil {
		t.Fatalf("RejectLoan() error = %v", err)
	}
	if gotBody["motivo"] != "renda insuficiente" {
		t.Errorf("motivo = %v", gotBody["motivo"])
	}
	if loan.Status != model.LoanRejected || loan.RejectionReason != "renda insuficiente" {
		t.Errorf("loan = %+v, want rejected with reason", loan)
	}
}

func TestResourcePaths(t *testing.T) {
	var gotMethod, gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, "{}")
	})
	defer srv.Close()

	ctx := context.Background()
	calls := []struct {
		run        func() error
		method     string
		path       string
	}{
		{func() error { _, err := client.GetCustomer(ctx, 1); return err }, "GET", "/clientes/1"},
		{func() error { _, err := client.UpdateCustomer(ctx, 1, model.Customer{}); return err }, "PUT", "/clientes/1"},
		{func() error { return client.DeleteCustomer(ctx, 1) }, "DELETE", "/clientes/1"},
		{func() error { _, err := client.CreateCheckingAccount(ctx, model.Account{}); return err }, "POST", "/contas/corrente"},
		{func() error { _, err := client.CreateSavingsAccount(ctx, model.Account{}); return err }, "POST", "/contas/poupanca"},
		{func() error { _, err := client.CreateCreditCard(ctx, model.Card{}); return err }, "POST", "/cartoes/credito"},
		{func() error { _, err := client.CreateDebitCard(ctx, model.Card{}); return err }, "POST", "/cartoes/debito"},
		{func() error { _, err := client.BlockCard(ctx, 5); return err }, "POST", "/cartoes/5/bloquear"},
		{func() error { _, err := client.UnblockCard(ctx, 5); return err }, "POST", "/cartoes/5/desbloquear"},
		{func() error { _, err := client.GetTransaction(ctx, 8); return err }, "GET", "/transacoes/8"},
		{func() error { _, err := client.CreateTransaction(ctx, model.Transaction{}); return err }, "POST", "/transacoes"},
		{func() error { _, err := client.CreateLoan(ctx, model.Loan{}); return err }, "POST", "/emprestimos"},
	}

	for _, call := range calls {
		if err := call.run(); err != nil {
			t.Fatalf("%s %s: %v", call.method, call.path, err)
		}
		if gotMethod != call.method || gotPath != call.path {
			t.Errorf("request = %s %s, want %s %s", gotMethod, gotPath, call.method, call.path)
		}
	}
}

func TestAccountStatementPathAndEmptyResult(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transacoes/extrato/12" {
			t.Errorf("path = %q", r.URL.Path)
		}
		// 200 with no body: endpoint answers nothing for accounts without movement.
	})
	defer srv.Close()

	txs, err := client.AccountStatement(context.Background(), 12)
	if err != nil {
		t.Fatalf("AccountStatement() error = %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("statement = %v, want empty", txs)
	}
}
