package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 外部公開トークン（注文番号・請求書番号）の発行
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はカートを確定済みの注文＋請求書に変換する。
// 注文・明細・請求書の作成とカートのクリアは1トランザクション。
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock
}

func NewCheckoutUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, idGen: idGen, clock: clock}
}

// 金額・顧客・支払情報はすべて任意。省略時はサーバー側で補完する。
type CheckoutInput struct {
	Tax             *model.Money
	DeliveryFee     *model.Money
	TotalAmount     *model.Money
	CustomerName    *string
	DeliveryAddress *string
	PhoneNumber     *string
	PickupTime      *time.Time
	PaymentMethod   *string
	PaymentID       *string
	PaymentStatus   *string
}

type CheckoutOutput struct {
	Message   string `json:"message"`
	OrderID   string `json:"order_id"`
	InvoiceID string `json:"invoice_id"`
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, cartID int64, in CheckoutInput) (CheckoutOutput, error) {
	if cartID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	//支払ステータスは省略時SUCCESS、指定があれば妥当性チェック
	paymentStatus := model.PaymentStatusSuccess
	if in.PaymentStatus != nil {
		paymentStatus = model.PaymentStatus(*in.PaymentStatus)
		if !paymentStatus.Valid() {
			return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_status")
		}
	}

	var out CheckoutOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート行をロックして取得。同じカートへの同時チェックアウトは
		//ここで直列化され、後続は空カートを見て失敗する。
		cart, err := r.Carts().FindByIDForUpdate(ctx, cartID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		//小計はチェックアウト時点のライブ価格で一度だけ計算。
		//OrderItemにはその価格を凍結して保存する。
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var subtotal model.Money = 0

		now := u.clock.Now()
		for _, ci := range cartItems {
			f, err := r.FoodItems().FindByID(ctx, ci.FoodItemID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid cart item")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderItems = append(orderItems, model.OrderItem{
				FoodItemID: ci.FoodItemID,
				Quantity:   ci.Quantity,
				Price:      f.Price,
				CreatedAt:  now,
			})
			subtotal += f.Price.Mul(ci.Quantity)
		}

		var tax model.Money = 0
		if in.Tax != nil {
			tax = *in.Tax
		}
		var deliveryFee model.Money = 0
		if in.DeliveryFee != nil {
			deliveryFee = *in.DeliveryFee
		}

		//total_amountは指定があればそのまま信用する
		total := subtotal + tax + deliveryFee
		if in.TotalAmount != nil {
			total = *in.TotalAmount
		}

		order := model.Order{
			OrderID:         u.idGen.NewID(),
			UserID:          cart.UserID,
			Status:          model.OrderStatusPending,
			Subtotal:        subtotal,
			Tax:             tax,
			DeliveryFee:     deliveryFee,
			TotalAmount:     total,
			CustomerName:    in.CustomerName,
			DeliveryAddress: in.DeliveryAddress,
			PhoneNumber:     in.PhoneNumber,
			PickupTime:      in.PickupTime,
			PaymentMethod:   in.PaymentMethod,
			PaymentID:       in.PaymentID,
			PaymentStatus:   paymentStatus,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		inv, err := r.Invoices().Create(ctx, model.Invoice{
			OrderID:       orderID,
			InvoiceNumber: u.idGen.NewID(),
			InvoiceDate:   now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細をクリア（カート自体は空のまま残す）
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CheckoutOutput{
			Message:   "Order placed successfully",
			OrderID:   order.OrderID,
			InvoiceID: inv.InvoiceNumber,
		}
		return nil
	})

	if err != nil {
		return CheckoutOutput{}, err
	}
	return out, nil
}
