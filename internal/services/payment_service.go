package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/webhook"
	"gorm.io/datatypes"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/internal/models/response_models"
	"dynastytrade/internal/repositories"
	"dynastytrade/pkg/utils"
)

// Pro subscription pricing, in minor units. $5/month.
const (
	proPriceMinor = 500
	proCurrency   = "usd"
)

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	EndpointSecret string // signs incoming webhooks
	AppBaseURL     string // success/cancel redirect base, e.g. https://app.example.com
}

type PaymentServiceInterface interface {
	// CreateCheckout opens a subscription-mode checkout session for the pro
	// plan and records a pending ledger entry.
	CreateCheckout(ctx context.Context, account *db_models.Account) (*response_models.CreateCheckoutResponse, error)
	// HandleWebhook verifies and applies a Stripe event. Signature failures
	// are the caller's problem; everything else is acknowledged.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	// ConfirmCheckout double-checks a session on the success redirect and
	// upgrades the account when it is paid.
	ConfirmCheckout(ctx context.Context, account *db_models.Account, sessionID string) error
}

type PaymentService struct {
	accounts     repositories.AccountRepository
	transactions repositories.TransactionRepository
	cfg          StripeConfig
}

func NewPaymentService(
	accounts repositories.AccountRepository,
	transactions repositories.TransactionRepository,
	cfg StripeConfig,
) PaymentServiceInterface {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &PaymentService{
		accounts:     accounts,
		transactions: transactions,
		cfg:          cfg,
	}
}

func (p *PaymentService) CreateCheckout(ctx context.Context, account *db_models.Account) (*response_models.CreateCheckoutResponse, error) {
	customerID, err := p.ensureCustomer(ctx, account)
	if err != nil {
		log.Printf("stripe customer setup failed for %s: %v", account.ID, err)
		return nil, utils.ErrPaymentUnavailable
	}

	base := strings.TrimRight(p.cfg.AppBaseURL, "/")
	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(proCurrency),
					UnitAmount: stripe.Int64(proPriceMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Dynasty Trade Analyzer Pro"),
						Description: stripe.String("Unlimited AI trade suggestions and advanced features"),
					},
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(base + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(base + "/payment-cancel"),
	}
	params.AddMetadata("account_id", account.ID.String())

	sess, err := session.New(params)
	if err != nil {
		log.Printf("stripe checkout session failed: %v", err)
		return nil, utils.ErrPaymentUnavailable
	}

	txn := &db_models.StripeTransaction{
		AccountID:         account.ID,
		CheckoutSessionID: sess.ID,
		AmountMinor:       proPriceMinor,
		Currency:          strings.ToUpper(proCurrency),
		Status:            db_models.TxnStatusPending,
		PlanType:          db_models.PlanPro,
	}
	if meta, err := json.Marshal(map[string]string{"checkout_url": sess.URL}); err == nil {
		txn.Metadata = datatypes.JSON(meta)
	}
	if err := p.transactions.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateCheckoutResponse{
		CheckoutURL: sess.URL,
		SessionID:   sess.ID,
		AmountMinor: proPriceMinor,
		Currency:    strings.ToUpper(proCurrency),
	}, nil
}

func (p *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.cfg.EndpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return utils.ErrInvalidWebhookSignature
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("stripe webhook: session unmarshal failed: %v", err)
			return utils.ErrInvalidInput
		}
		return p.applyCompletedCheckout(ctx, &sess)
	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return utils.ErrInvalidInput
		}
		if err := p.transactions.MarkStatus(ctx, sess.ID, db_models.TxnStatusFailed, ""); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	default:
		// Unhandled event types are acknowledged so Stripe stops retrying.
		return nil
	}
}

func (p *PaymentService) ConfirmCheckout(ctx context.Context, account *db_models.Account, sessionID string) error {
	if sessionID == "" {
		return utils.ErrInvalidInput
	}

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		log.Printf("stripe session retrieve failed for %s: %v", sessionID, err)
		return utils.ErrPaymentUnavailable
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return fmt.Errorf("%w: payment not completed", utils.ErrPaymentUnavailable)
	}

	return p.applyCompletedCheckout(ctx, sess)
}

// applyCompletedCheckout marks the ledger entry paid and moves the paying
// account to pro. Repeated deliveries of the same event are harmless: the
// status write and plan change are both idempotent.
func (p *PaymentService) applyCompletedCheckout(ctx context.Context, sess *stripe.CheckoutSession) error {
	txn, err := p.transactions.FindByCheckoutSession(ctx, sess.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		// Ack unknown sessions to avoid a retry storm, but leave a trail.
		log.Printf("stripe webhook: no transaction for checkout session %s", sess.ID)
		return nil
	}

	paymentIntentID := ""
	if sess.PaymentIntent != nil {
		paymentIntentID = sess.PaymentIntent.ID
	}
	if err := p.transactions.MarkStatus(ctx, sess.ID, db_models.TxnStatusPaid, paymentIntentID); err != nil {
		return utils.ErrDatabaseError
	}

	if err := p.accounts.UpdatePlan(ctx, txn.AccountID, db_models.PlanPro); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("Account %s upgraded to pro via checkout session %s", txn.AccountID, sess.ID)
	return nil
}

// ensureCustomer finds or creates the Stripe customer for an account and
// persists the id for later checkouts.
func (p *PaymentService) ensureCustomer(ctx context.Context, account *db_models.Account) (string, error) {
	if account.StripeCustomerID != nil && *account.StripeCustomerID != "" {
		return *account.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(account.Email),
	}
	params.AddMetadata("account_id", account.ID.String())

	cust, err := customer.New(params)
	if err != nil {
		return "", err
	}

	if err := p.accounts.UpdateStripeCustomerID(ctx, account.ID, cust.ID); err != nil {
		return "", err
	}
	return cust.ID, nil
}
