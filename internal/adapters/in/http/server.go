// Package http exposes the storefront workflow over an echo HTTP API: order
// submission, thank-you lookup, receipt download, the contact form, auth and
// the static catalogs.
package http

import (
	"errors"
	"net/http"

	"pickleshop/internal/core/application/usecases/commands"
	"pickleshop/internal/core/application/usecases/queries"
	"pickleshop/internal/core/domain/model/geography"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/pricing"
	"pickleshop/internal/core/domain/services"
	"pickleshop/internal/core/ports"
	"pickleshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultSnapshotSlot is used when a client does not name its own slot.
const defaultSnapshotSlot = "order_draft"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions *SessionRegistry

	// Command handlers
	submitOrderHandler    commands.SubmitOrderCommandHandler
	signUpHandler         commands.SignUpCommandHandler
	signInHandler         commands.SignInCommandHandler
	sendContactHandler    commands.SendContactMessageCommandHandler

	// Query side
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler

	// Receipt download reads the persisted order and re-renders the artifact.
	orders   ports.OrderRepository
	receipts ports.ReceiptGenerator

	// Draft restore reads the snapshot slot back on a returning visit.
	snapshots ports.DraftSnapshotStore
}

// NewServer creates the HTTP server with the required handlers and ports.
func NewServer(
	sessions *SessionRegistry,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	signUpHandler commands.SignUpCommandHandler,
	signInHandler commands.SignInCommandHandler,
	sendContactHandler commands.SendContactMessageCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	orders ports.OrderRepository,
	receipts ports.ReceiptGenerator,
	snapshots ports.DraftSnapshotStore,
) *Server {
	return &Server{
		sessions:               sessions,
		submitOrderHandler:     submitOrderHandler,
		signUpHandler:          signUpHandler,
		signInHandler:          signInHandler,
		sendContactHandler:     sendContactHandler,
		getOrderSummaryHandler: getOrderSummaryHandler,
		orders:                 orders,
		receipts:               receipts,
		snapshots:              snapshots,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.SubmitOrder)
	e.GET("/orders/draft", s.GetDraft)
	e.GET("/orders/:id", s.GetOrderSummary)
	e.GET("/orders/:id/receipt", s.DownloadReceipt)

	e.POST("/contact", s.SendContactMessage)

	e.POST("/auth/signup", s.SignUp)
	e.POST("/auth/login", s.SignIn)
	e.POST("/auth/logout", s.SignOut)

	e.GET("/catalog/provinces", s.GetProvinces)
	e.GET("/catalog/provinces/:province/districts", s.GetDistricts)
	e.GET("/catalog/prices", s.GetPrices)

	e.GET("/health", s.Health)
}

// SubmitOrder handles POST /orders - runs the submission pipeline.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	slot := req.SnapshotSlot
	if slot == "" {
		slot = defaultSnapshotSlot
	}

	cmd, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), slot, req.toDraft())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	sess := s.sessions.Resolve(bearerToken(ctx))
	confirmation, err := s.submitOrderHandler.Handle(ctx.Request().Context(), sess, cmd)
	if err != nil {
		return s.submitOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{
		OrderID:         confirmation.OrderID().String(),
		TotalAmount:     confirmation.TotalAmount(),
		ReceiptFilename: confirmation.Receipt().Filename,
		ThankYouDelayMs: confirmation.ThankYouDelay().Milliseconds(),
	})
}

func (s *Server) submitOrderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrSignInRequired):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: commands.ErrOrderPersistenceFailed.Error(),
		})
	}
}

// GetDraft handles GET /orders/draft - reads the snapshot slot back so a
// returning client can repopulate the form. The stored draft is replayed
// through the form controller, so the response carries the derived state
// (district list, postal code, total) alongside the fields themselves.
func (s *Server) GetDraft(ctx echo.Context) error {
	slot := ctx.QueryParam("slot")
	if slot == "" {
		slot = defaultSnapshotSlot
	}

	snapshot, err := s.snapshots.Load(ctx.Request().Context(), slot)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No saved draft",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load draft",
		})
	}
	if snapshot.IsEmpty() {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No saved draft",
		})
	}

	controller := services.NewFormController(nil)
	controller.RestoreFromSnapshot(snapshot)

	return ctx.JSON(http.StatusOK, draftResponseFrom(controller))
}

// GetOrderSummary handles GET /orders/:id - the thank-you view context.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load order",
		})
	}

	return ctx.JSON(http.StatusOK, OrderSummaryResponse{
		OrderID:         summary.ID.String(),
		FullName:        summary.FullName,
		Province:        summary.Province,
		District:        summary.District,
		PostalCode:      summary.PostalCode,
		DeliveryLine1:   summary.DeliveryLine1,
		DeliveryCity:    summary.DeliveryCity,
		PackageSize:     summary.PackageSize,
		NumberOfBottles: summary.NumberOfBottles,
		TotalAmount:     summary.TotalAmount,
	})
}

// DownloadReceipt handles GET /orders/:id/receipt - re-renders and serves
// the receipt PDF for a persisted order.
func (s *Server) DownloadReceipt(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	persisted, err := s.orders.Get(ctx.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load order",
		})
	}

	receipt, err := s.receipts.Generate(persisted.Details(), persisted.ID(), persisted.TotalAmount())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render receipt",
		})
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+receipt.Filename+`"`)
	return ctx.Blob(http.StatusOK, "application/pdf", receipt.Content)
}

// SendContactMessage handles POST /contact.
func (s *Server) SendContactMessage(ctx echo.Context) error {
	var req ContactRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSendContactMessageCommand(req.Name, req.Email, req.Message)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err = s.sendContactHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "Failed to send message, please try again",
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}

// SignUp handles POST /auth/signup.
func (s *Server) SignUp(ctx echo.Context) error {
	var req CredentialsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSignUpCommand(req.Email, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err = s.signUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create account",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// SignIn handles POST /auth/login - issues a bearer token on success.
func (s *Server) SignIn(ctx echo.Context) error {
	var req CredentialsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSignInCommand(req.Email, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	token, sess := s.sessions.Issue()
	if err = s.signInHandler.Handle(ctx.Request().Context(), sess, cmd); err != nil {
		s.sessions.Revoke(token)
		if errors.Is(err, commands.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to sign in",
		})
	}

	identity, _ := sess.Current()
	return ctx.JSON(http.StatusOK, SignInResponse{
		Token: token,
		Email: identity.Email.String(),
	})
}

// SignOut handles POST /auth/logout.
func (s *Server) SignOut(ctx echo.Context) error {
	s.sessions.Revoke(bearerToken(ctx))
	return ctx.NoContent(http.StatusNoContent)
}

// GetProvinces handles GET /catalog/provinces.
func (s *Server) GetProvinces(ctx echo.Context) error {
	provinces := geography.Provinces()
	names := make([]string, 0, len(provinces))
	for _, p := range provinces {
		names = append(names, p.Name())
	}
	return ctx.JSON(http.StatusOK, names)
}

// GetDistricts handles GET /catalog/provinces/:province/districts.
func (s *Server) GetDistricts(ctx echo.Context) error {
	districts, err := geography.DistrictsOf(ctx.Param("province"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Province not found",
		})
	}

	response := make([]DistrictResponse, 0, len(districts))
	for _, d := range districts {
		response = append(response, DistrictResponse{
			Name:       d.Name(),
			PostalCode: d.PostalCode(),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPrices handles GET /catalog/prices.
func (s *Server) GetPrices(ctx echo.Context) error {
	sizes := pricing.Sizes()
	response := make([]PriceResponse, 0, len(sizes))
	for _, size := range sizes {
		price, err := pricing.UnitPrice(size)
		if err != nil {
			continue
		}
		response = append(response, PriceResponse{Size: size, UnitPrice: price})
	}
	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}
