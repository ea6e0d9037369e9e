package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

// WorkerName имя фоновой задачи, попадает в каждую запись лога
type WorkerName string

// BaseImpl общий цикл фоновой задачи: первый запуск после задержки,
// далее по интервалу. Паника внутри задачи логируется и не роняет процесс.
type BaseImpl struct {
	name          WorkerName
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(name WorkerName, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		name:          name,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", string(i.name))
}

func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("паника в фоновой задаче: %v", r)
		}
	}()
	period := i.firstRunDelay
	logger := i.GetLogger()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(period):
			logger.Info("Задача запущена")
			jobFunc(ctx)
			logger.Info("Задача выполнена")
		}
		period = i.runInterval
	}
}
