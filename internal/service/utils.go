package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// validateMoneyAmount проверяет, что сумма положительна и содержит не больше domain.MoneyScale знаков после запятой.
func validateMoneyAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", domain.ErrInvalidAmount, amount)
	}
	if !amount.Equal(amount.Truncate(domain.MoneyScale)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", domain.ErrInvalidAmount, amount, domain.MoneyScale)
	}
	return nil
}

// validateQuantity проверяет, что количество положительно и точно хранится в NUMERIC(28,9).
func validateQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", domain.ErrInvalidQuantity, quantity)
	}
	if !quantity.Equal(quantity.Truncate(domain.QuantityScale)) {
		return fmt.Errorf("%w: quantity %s has more than %d decimal places",
			domain.ErrInvalidQuantity, quantity, domain.QuantityScale)
	}
	return nil
}

// txFailed приводит ошибку внутри атомарного блока к domain.ErrTransactionFailed. Исходный тип ошибки
// сохраняется только в тексте.
func txFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %s", op, domain.ErrTransactionFailed, err.Error())
}

// quoteFailed гарантирует, что ошибка поставщика котировок имеет тип domain.ErrQuoteUnavailable.
func quoteFailed(op string, err error) error {
	if errors.Is(err, domain.ErrQuoteUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %s", op, domain.ErrQuoteUnavailable, err.Error())
}

// publish отправляет событие после коммита. Ошибка публикации только логируется: операция уже выполнена.
func publish(ctx context.Context, p EventPublisher, l *logrus.Entry, event domain.LedgerEvent) {
	if err := p.Publish(ctx, event); err != nil {
		l.WithError(err).
			WithField("event", event.Type).
			Error("publish ledger event")
	}
}
