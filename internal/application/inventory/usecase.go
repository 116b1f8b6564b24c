package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// ApplyMovementUseCase es el motor del libro de inventario: aplica movimientos
// IN/OUT/ADJUST/TRANSFER al saldo de (ítem, bodega) dentro de una transacción,
// con la regla de saldo nunca negativo, y deja el rastro inmutable en el historial.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento.
// ActorRecID viene del token verificado; los campos de geolocalización son los
// reportados por el dispositivo del cliente y se guardan tal cual.
type MovementInput struct {
	ActorRecID   string
	ItemID       string
	LocationID   string
	MovementType string
	Qty          decimal.Decimal
	Reason       string
	Voucher      string
	Latitude     *float64
	Longitude    *float64
	AccuracyM    *float64
	DeviceTime   *time.Time
}

// Apply valida la entrada, resuelve los códigos de negocio y ejecuta la unidad
// atómica: mutación del saldo + inserción del movimiento. Devuelve el ID del
// movimiento creado.
//
// Resultados del protocolo por solicitud:
//   - nil                      -> Applied (saldo actualizado + historial escrito)
//   - ErrInvalidInput          -> rechazado antes de tocar nada
//   - ErrNotFound              -> ítem o bodega desconocidos, sin efecto
//   - ErrInsufficientStock     -> solo OUT, sin efecto (la escritura condicional no encontró fila)
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, in MovementInput) (string, error) {
	itemID := strings.TrimSpace(in.ItemID)
	locationID := strings.TrimSpace(in.LocationID)
	if itemID == "" || locationID == "" {
		return "", domain.ErrInvalidInput
	}
	if !in.Qty.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	movType, ok := entity.ParseMovementType(in.MovementType)
	if !ok {
		return "", domain.ErrInvalidInput
	}

	movementID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		locRepo repository.LocationRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		itemRecID, err := itemRepo.ResolveRecID(ctx, itemID)
		if err != nil {
			return err
		}
		locRecID, err := locRepo.ResolveRecID(ctx, locationID)
		if err != nil {
			return err
		}
		if itemRecID == "" || locRecID == "" {
			return domain.ErrNotFound
		}

		if movType == entity.MovementTypeOUT {
			// Débito condicional: una sola sentencia que resta solo si el saldo
			// alcanza. Dos OUT concurrentes sobre la misma fila no pueden ver
			// ambos el saldo previo, así que el perdedor cae aquí.
			ok, err := stockRepo.Debit(ctx, itemRecID, locRecID, in.Qty, in.ActorRecID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientStock
			}
		} else {
			// IN/ADJUST/TRANSFER suman. TRANSFER es un crédito puro en destino:
			// la salida en la bodega origen la emite el caller como OUT aparte.
			if err := stockRepo.Credit(ctx, itemRecID, locRecID, in.Qty, in.ActorRecID); err != nil {
				return err
			}
		}

		return movRepo.Create(ctx, &entity.Movement{
			ID:            movementID,
			ItemRecID:     itemRecID,
			LocationRecID: locRecID,
			Type:          movType,
			Qty:           in.Qty,
			Reason:        strings.TrimSpace(in.Reason),
			Voucher:       strings.TrimSpace(in.Voucher),
			CreatedBy:     in.ActorRecID,
			CreatedAt:     time.Now(),
			Latitude:      in.Latitude,
			Longitude:     in.Longitude,
			AccuracyM:     in.AccuracyM,
			DeviceTime:    in.DeviceTime,
		})
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// ApplyFromRequest adapta el request HTTP a Apply.
func (uc *ApplyMovementUseCase) ApplyFromRequest(ctx context.Context, actorRecID string, in dto.RegisterMovementRequest) (string, error) {
	return uc.Apply(ctx, MovementInput{
		ActorRecID:   actorRecID,
		ItemID:       in.ItemID,
		LocationID:   in.LocationID,
		MovementType: in.MovementType,
		Qty:          in.Qty,
		Reason:       in.Reason,
		Voucher:      in.Voucher,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		AccuracyM:    in.AccuracyM,
		DeviceTime:   in.DeviceTime,
	})
}
