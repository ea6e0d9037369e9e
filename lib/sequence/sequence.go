package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"qms-backend/db"
	sequencestore "qms-backend/lib/sequence/store"
	"qms-backend/models"
)

// maxAttempts предел попыток при гонке с параллельным созданием записей
const maxAttempts = 100

type Provider interface {
	Next(family models.NumberFamily) (number string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: sequencestore.NewInstance(db.DB),
		now:   time.Now,
	}
}

// NewWithStore для использования в тестах и внутри транзакций
func NewWithStore(store sequencestore.Provider, now func() time.Time) Provider {
	return &impl{
		store: store,
		now:   now,
	}
}

type impl struct {
	store sequencestore.Provider
	now   func() time.Time
}

// Next выдаёт следующий регистрационный номер семейства в пределах текущего года.
// Хранилище не даёт атомарного инкремента, поэтому номер подбирается по максимуму
// существующих с ограниченным числом повторов при коллизии; если все попытки
// исчерпаны, выдаётся номер от текущего времени, живучесть важнее строгой
// последовательности.
func (i impl) Next(family models.NumberFamily) (number string, err error) {
	year := i.now().Format("06")
	logger := log.
		WithField("prefix", family.Prefix).
		WithField("year", year)

	maxNumber, err := i.store.MaxNumber(family.TableName, likePattern(family, year))
	if err != nil {
		logger.WithError(err).Error("ошибка поиска максимального номера")
		return "", err
	}
	next := 1
	if maxNumber != "" {
		seq, parseErr := parseSeq(family, maxNumber)
		if parseErr != nil {
			logger.WithError(parseErr).Error("не удалось разобрать номер, нумерация начата заново")
		} else {
			next = seq + 1
		}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := formatNumber(family, year, next)
		exist, err := i.store.Exists(family.TableName, candidate)
		if err != nil {
			return "", err
		}
		if !exist {
			return candidate, nil
		}
		// номер занят параллельным создателем, пробуем следующий
		next++
	}

	fallback := formatNumber(family, year, i.timeBasedSeq(family))
	logger.
		WithField("number", fallback).
		Warn("попытки подбора номера исчерпаны, выдан номер от текущего времени")
	return fallback, nil
}

func likePattern(family models.NumberFamily, year string) string {
	if family.Style == models.NumberStyleDashed {
		return fmt.Sprintf("%v-%v-%%", family.Prefix, year)
	}
	return fmt.Sprintf("%v%v%%", family.Prefix, year)
}

func formatNumber(family models.NumberFamily, year string, seq int) string {
	if family.Style == models.NumberStyleDashed {
		return fmt.Sprintf("%v-%v-%04d", family.Prefix, year, seq)
	}
	return fmt.Sprintf("%v%v%03d", family.Prefix, year, seq)
}

func parseSeq(family models.NumberFamily, number string) (int, error) {
	var suffix string
	if family.Style == models.NumberStyleDashed {
		parts := strings.Split(number, "-")
		if len(parts) != 3 {
			return 0, errors.Errorf("неожиданный формат номера: %v", number)
		}
		suffix = parts[2]
	} else {
		trimmed := strings.TrimPrefix(number, family.Prefix)
		if len(trimmed) <= 2 {
			return 0, errors.Errorf("неожиданный формат номера: %v", number)
		}
		suffix = trimmed[2:]
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, errors.Wrapf(err, "неожиданный формат номера: %v", number)
	}
	return seq, nil
}

// timeBasedSeq последние разряды текущего времени в пределах ширины номера
func (i impl) timeBasedSeq(family models.NumberFamily) int {
	nano := i.now().UnixNano()
	if family.Style == models.NumberStyleDashed {
		return int(nano % 10000)
	}
	return int(nano % 1000)
}
