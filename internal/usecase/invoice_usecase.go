package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// InvoiceUsecase は請求書の読み取り専用API。
type InvoiceUsecase struct {
	tx repo.TransactionManager
}

func NewInvoiceUsecase(tx repo.TransactionManager) *InvoiceUsecase {
	return &InvoiceUsecase{tx: tx}
}

type InvoiceView struct {
	ID            int64     `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`
	Order         OrderView `json:"order"`
}

type ListInvoicesInput struct {
	UserID string
}

func (u *InvoiceUsecase) ListInvoices(ctx context.Context, in ListInvoicesInput) ([]InvoiceView, error) {
	var outs []InvoiceView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		invoices, err := r.Invoices().List(ctx, repo.InvoiceListQuery{UserID: in.UserID})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]InvoiceView, 0, len(invoices))
		for _, inv := range invoices {
			v, err := buildInvoiceView(ctx, r, inv)
			if err != nil {
				return err
			}
			outs = append(outs, v)
		}
		return nil
	})

	if err != nil {
		return []InvoiceView{}, err
	}
	return outs, nil
}

func (u *InvoiceUsecase) GetInvoice(ctx context.Context, id int64) (InvoiceView, error) {
	if id <= 0 {
		return InvoiceView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out InvoiceView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		inv, err := r.Invoices().FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Invoice not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildInvoiceView(ctx, r, inv)
		return err
	})

	if err != nil {
		return InvoiceView{}, err
	}
	return out, nil
}

// GetInvoiceByOrder は外部公開の注文番号から請求書を引く。
func (u *InvoiceUsecase) GetInvoiceByOrder(ctx context.Context, externalOrderID string) (InvoiceView, error) {
	if strings.TrimSpace(externalOrderID) == "" {
		return InvoiceView{}, NewHTTPError(http.StatusBadRequest, "order_id is required")
	}

	var out InvoiceView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByOrderID(ctx, strings.TrimSpace(externalOrderID))
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Invoice not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		inv, err := r.Invoices().FindByOrderID(ctx, o.ID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Invoice not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildInvoiceView(ctx, r, inv)
		return err
	})

	if err != nil {
		return InvoiceView{}, err
	}
	return out, nil
}

// 親注文のビューを埋め込んだInvoiceViewを作る
func buildInvoiceView(ctx context.Context, r repo.TxRepos, inv model.Invoice) (InvoiceView, error) {
	o, err := r.Orders().FindByID(ctx, inv.OrderID)
	if err == repo.ErrNotFound {
		return InvoiceView{}, NewHTTPError(http.StatusNotFound, "Invoice not found")
	}
	if err != nil {
		return InvoiceView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ov, err := buildOrderView(ctx, r, o)
	if err != nil {
		return InvoiceView{}, err
	}

	return InvoiceView{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		Order:         ov,
	}, nil
}
