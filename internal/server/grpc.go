package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	adminv1 "HedgeRouter/gen/go/hedgerouter/admin/v1"
	composev1 "HedgeRouter/gen/go/hedgerouter/compose/v1"
	queryv1 "HedgeRouter/gen/go/hedgerouter/query/v1"
	"HedgeRouter/internal/admin"
	"HedgeRouter/internal/event"
	"HedgeRouter/internal/hedge"
	"HedgeRouter/internal/observability"
	"HedgeRouter/internal/query"
	"HedgeRouter/internal/quote"
	"HedgeRouter/internal/router"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	Router        *router.Router
	Quotes        *quote.Calculator
	Guard         *admin.Guard
	Emitter       *router.Emitter
	QueryService  *query.QueryService
	Metrics       *observability.Metrics
	StartTime     time.Time
	HealthChecker *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	// Register services
	composev1.RegisterComposeServiceServer(grpcServer, &composeServiceImpl{
		router:  deps.Router,
		quotes:  deps.Quotes,
		metrics: deps.Metrics,
	})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		guard:        deps.Guard,
		emitter:      deps.Emitter,
		queryService: deps.QueryService,
		metrics:      deps.Metrics,
		startTime:    deps.StartTime,
	})
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{
		qs:      deps.QueryService,
		metrics: deps.Metrics,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	// Register gateway handlers — they proxy HTTP/JSON to the gRPC server
	if err := composev1.RegisterComposeServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register compose gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// ComposeService gRPC implementation
// ============================================================================

type composeServiceImpl struct {
	composev1.UnimplementedComposeServiceServer
	router  *router.Router
	quotes  *quote.Calculator
	metrics *observability.Metrics
}

func (s *composeServiceImpl) ComposeWithExistingProtection(ctx context.Context, req *composev1.ComposeWithExistingProtectionRequest) (*composev1.ComposeResponse, error) {
	requestID, err := parseUUID(req.RequestId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request_id: %v", err)
	}
	caller, err := parseUUID(req.Caller)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid caller: %v", err)
	}

	result, err := s.router.ComposeWithExistingProtection(ctx, hedge.ComposeExistingRequest{
		RequestID:    requestID,
		Caller:       caller,
		Vault:        hedge.Ref(req.Vault),
		TrancheID:    req.TrancheId,
		InvestAmount: req.InvestAmount,
		Protection:   hedge.Ref(req.Protection),
		MaxPremium:   req.MaxPremium,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return composeResponse(result), nil
}

func (s *composeServiceImpl) ComposeWithNewProtection(ctx context.Context, req *composev1.ComposeWithNewProtectionRequest) (*composev1.ComposeResponse, error) {
	requestID, err := parseUUID(req.RequestId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request_id: %v", err)
	}
	caller, err := parseUUID(req.Caller)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid caller: %v", err)
	}
	if req.Terms == nil {
		return nil, status.Error(codes.InvalidArgument, "terms are required")
	}

	terms := hedge.ProtectionTerms{
		Notional:            req.Terms.Notional,
		RateBps:             req.Terms.RateBps,
		Oracle:              hedge.Ref(req.Terms.Oracle),
		PaymentIntervalDays: req.Terms.PaymentIntervalDays,
		CollateralToken:     hedge.Ref(req.Terms.CollateralToken),
	}
	if req.Terms.Maturity != nil {
		terms.Maturity = req.Terms.Maturity.AsTime()
	}

	result, err := s.router.ComposeWithNewProtection(ctx, hedge.ComposeNewRequest{
		RequestID:    requestID,
		Caller:       caller,
		Vault:        hedge.Ref(req.Vault),
		TrancheID:    req.TrancheId,
		InvestAmount: req.InvestAmount,
		MaxPremium:   req.MaxPremium,
		Terms:        terms,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return composeResponse(result), nil
}

func (s *composeServiceImpl) QuoteHedge(ctx context.Context, req *composev1.QuoteHedgeRequest) (*composev1.QuoteHedgeResponse, error) {
	start := time.Now()
	result, err := s.quotes.Quote(ctx, hedge.Ref(req.Vault), req.InvestAmount, req.TenorDays)
	if s.metrics != nil {
		s.metrics.QuoteDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.QuoteRequests.WithLabelValues("error").Inc()
		}
		return nil, toStatus(err)
	}
	if s.metrics != nil {
		s.metrics.QuoteRequests.WithLabelValues("ok").Inc()
	}

	return &composev1.QuoteHedgeResponse{
		SpreadBps:         result.SpreadBps,
		EstimatedPremium:  result.EstimatedPremium,
		AnnualRunningCost: result.AnnualRunningCost,
	}, nil
}

func composeResponse(result hedge.CompositionResult) *composev1.ComposeResponse {
	return &composev1.ComposeResponse{
		Protection:   string(result.Protection),
		InvestAmount: result.InvestAmount,
		PremiumPaid:  result.PremiumPaid,
		Refund:       result.Refund,
		Sequence:     result.Sequence,
	}
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	guard        *admin.Guard
	emitter      *router.Emitter
	queryService *query.QueryService
	metrics      *observability.Metrics
	startTime    time.Time
}

func (s *adminServiceImpl) Pause(ctx context.Context, req *adminv1.PauseRequest) (*adminv1.PauseResponse, error) {
	authority, err := parseUUID(req.Authority)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid authority: %v", err)
	}

	if err := s.guard.Pause(authority); err != nil {
		return nil, toStatus(err)
	}

	now := time.Now()
	seq := s.emitter.Emit(&event.RouterPaused{Authority: authority, PausedAt: now}, now)
	if s.metrics != nil {
		s.metrics.PauseTransitions.WithLabelValues("paused").Inc()
	}

	return &adminv1.PauseResponse{Paused: true, Sequence: seq}, nil
}

func (s *adminServiceImpl) Unpause(ctx context.Context, req *adminv1.UnpauseRequest) (*adminv1.UnpauseResponse, error) {
	authority, err := parseUUID(req.Authority)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid authority: %v", err)
	}

	if err := s.guard.Unpause(authority); err != nil {
		return nil, toStatus(err)
	}

	now := time.Now()
	seq := s.emitter.Emit(&event.RouterUnpaused{Authority: authority, UnpausedAt: now}, now)
	if s.metrics != nil {
		s.metrics.PauseTransitions.WithLabelValues("active").Inc()
	}

	return &adminv1.UnpauseResponse{Paused: false, Sequence: seq}, nil
}

func (s *adminServiceImpl) GetRouterStatus(ctx context.Context, req *adminv1.GetRouterStatusRequest) (*adminv1.GetRouterStatusResponse, error) {
	return &adminv1.GetRouterStatusResponse{
		Paused:        s.guard.Paused(),
		Authority:     s.guard.Authority().String(),
		LastSequence:  s.emitter.Sequence(),
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed:      report.IsHealthy,
		MaxSequence: report.MaxSequence,
	}

	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstMismatchSequence = report.HashChainBreaks[0]
		} else if len(report.SequenceGaps) > 0 {
			resp.FirstMismatchSequence = report.SequenceGaps[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d sequence gaps",
			len(report.HashChainBreaks), len(report.SequenceGaps))
	}

	return resp, nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs      *query.QueryService
	metrics *observability.Metrics
}

func (s *queryServiceImpl) observe(endpoint string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.QueryRequests.WithLabelValues(endpoint, "error").Inc()
		s.metrics.QueryErrors.WithLabelValues(endpoint, status.Code(err).String()).Inc()
		return
	}
	s.metrics.QueryRequests.WithLabelValues(endpoint, "ok").Inc()
}

func (s *queryServiceImpl) GetComposition(ctx context.Context, req *queryv1.GetCompositionRequest) (resp *queryv1.GetCompositionResponse, err error) {
	start := time.Now()
	defer func() { s.observe("get_composition", start, err) }()
	if req.RequestId == "" {
		return nil, status.Error(codes.InvalidArgument, "request_id is required")
	}

	rec, err := s.qs.GetComposition(ctx, req.RequestId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, status.Errorf(codes.NotFound, "no composition with request_id %s", req.RequestId)
		}
		return nil, status.Errorf(codes.Internal, "get composition: %v", err)
	}

	return &queryv1.GetCompositionResponse{
		Composition:  toPbComposition(rec),
		AsOfSequence: rec.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListCompositions(ctx context.Context, req *queryv1.ListCompositionsRequest) (resp *queryv1.ListCompositionsResponse, err error) {
	start := time.Now()
	defer func() { s.observe("list_compositions", start, err) }()

	if req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 50
	}

	var beforeSeq *int64
	if req.BeforeSequence > 0 {
		beforeSeq = &req.BeforeSequence
	}

	records, err := s.qs.ListCompositions(ctx, req.Caller, pageSize, beforeSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list compositions: %v", err)
	}

	var pbRecords []*queryv1.Composition
	for i := range records {
		pbRecords = append(pbRecords, toPbComposition(&records[i]))
	}

	var asOf int64
	if len(records) > 0 {
		asOf = records[0].AsOfSequence
	}

	return &queryv1.ListCompositionsResponse{
		Compositions: pbRecords,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) ListAuditEvents(ctx context.Context, req *queryv1.ListAuditEventsRequest) (resp *queryv1.ListAuditEventsResponse, err error) {
	start := time.Now()
	defer func() { s.observe("list_audit_events", start, err) }()

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	events, err := s.qs.GetAuditEvents(ctx, pageSize, req.FromSequence)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list audit events: %v", err)
	}

	var pbEvents []*queryv1.AuditEvent
	for _, e := range events {
		pbEvents = append(pbEvents, &queryv1.AuditEvent{
			Sequence:       e.Sequence,
			EventType:      e.EventType,
			IdempotencyKey: e.IdempotencyKey,
			Payload:        e.Payload,
			EventHash:      e.EventHash,
			PrevHash:       e.PrevHash,
			Timestamp:      timestamppb.New(e.Timestamp),
		})
	}

	return &queryv1.ListAuditEventsResponse{Events: pbEvents}, nil
}

func toPbComposition(rec *query.CompositionRecord) *queryv1.Composition {
	return &queryv1.Composition{
		Sequence:     rec.Sequence,
		EventType:    rec.EventType,
		RequestId:    rec.IdempotencyKey,
		Caller:       rec.Caller,
		Vault:        rec.Vault,
		TrancheId:    rec.TrancheID,
		Protection:   rec.Protection,
		InvestAmount: rec.InvestAmount,
		PremiumPaid:  rec.PremiumPaid,
		Refund:       rec.Refund,
		Timestamp:    timestamppb.New(rec.Timestamp),
	}
}

// ============================================================================
// Helpers
// ============================================================================

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, hedge.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, hedge.ErrDuplicateRequest):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, hedge.ErrPaused):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, hedge.ErrState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, hedge.ErrReentrancy):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, hedge.ErrTransfer):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func parseUUID(s string) (googleuuid.UUID, error) {
	return googleuuid.Parse(s)
}
