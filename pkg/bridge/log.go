package bridge

import (
	"context"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

const serviceName = "DocumentRegistryBridge"

// logService wraps Service with automatic logging of every contract call
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the bridge Service.
// It logs call entry/exit, duration, errors and the transaction hash of writes.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Invoke wraps the service method with logging
func (ls *logService) Invoke(ctx context.Context, op Operation) (res *Result, err error) {
	if op == nil {
		return ls.svc.Invoke(ctx, op)
	}

	start := time.Now()

	fields := append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", op.Method()),
		zap.String("action", string(op.Action())),
		zap.Bool("mutating", op.Mutating()),
	}, argumentFields(op)...)

	ls.logger.Info("Contract call started", fields...)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Contract call failed",
				zap.String("service", serviceName),
				zap.String("method", op.Method()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		ls.logger.Info("Contract call completed",
			zap.String("service", serviceName),
			zap.String("method", op.Method()),
			zap.String("tx_hash", res.TxHash()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Invoke(ctx, op)
}

func argumentFields(op Operation) []zap.Field {
	switch o := op.(type) {
	case AddToWhitelist:
		return []zap.Field{zap.String("address", o.Address.Hex())}
	case RemoveFromWhitelist:
		return []zap.Field{zap.String("address", o.Address.Hex())}
	case SetDocumentHash:
		return []zap.Field{zap.String("document_hash", "0x"+hex.EncodeToString(o.Hash[:]))}
	case SignDocument:
		return []zap.Field{zap.String("document_hash", "0x"+hex.EncodeToString(o.Hash[:]))}
	case CheckAllSigned:
		return []zap.Field{zap.String("document_hash", "0x"+hex.EncodeToString(o.Hash[:]))}
	case GetVoteCount:
		return []zap.Field{zap.String("document_hash", "0x"+hex.EncodeToString(o.Hash[:]))}
	case Request:
		var fields []zap.Field
		if o.Fields.DocumentHash != "" {
			fields = append(fields, zap.String("document_hash", o.Fields.DocumentHash))
		}
		if o.Fields.NewDocumentHash != "" {
			fields = append(fields, zap.String("new_document_hash", o.Fields.NewDocumentHash))
		}
		if o.Fields.Address != "" {
			fields = append(fields, zap.String("address", o.Fields.Address))
		}
		return fields
	default:
		return nil
	}
}
