// Package notify доставляет запросы пояснений по расхождениям владельцам касс через внешний вебхук.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/internal/transport/notify/webhook"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultIdlePause              = time.Second
	defaultRetryPause             = 30 * time.Second
	defaultLimitPerIteration uint = 100
	defaultWorkers           uint = 5
)

// Processor разбирает очередь запросов пояснений и отправляет их в вебхук. Ошибки доставки
// не влияют на операции с кассами: запрос остается в очереди до следующей итерации.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	idlePause         time.Duration
	retryPause        time.Duration
}

// New создает новый экземпляр процессора доставки уведомлений.
func New(svs Servicer, webhookURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            webhook.New(webhookURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		idlePause:         defaultIdlePause,
		retryPause:        defaultRetryPause,
	}
}

// SetLimitPerIteration устанавливает кол-во запросов, обрабатываемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, отправляющих уведомления.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// Run запускает доставку в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает через сервисный слой недоставленные запросы пояснений, не более
//     SetLimitPerIteration штук.
//  2. N воркеров (SetWorkers) отправляют их в вебхук. На ответ 429 воркер ждет Retry-After и повторяет запрос.
//  3. Результаты всех доставок записываются через сервисный слой одним батчем.
//
// Если очередь пуста, цикл делает паузу около секунды. После ошибок и недоставленных уведомлений пауза
// длиннее, чтобы не исчерпать попытки доставки за время недоступности вебхука.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
	}).Info("Starting")

	for {
		var pause time.Duration
		err := p.process(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoExplanations):
			pause = p.idlePause
		case errors.Is(err, ErrUndelivered):
			pause = p.retryPause
		default:
			if ctx.Err() == nil {
				p.l.WithError(err).Error("process error")
			}
			pause = p.retryPause
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(time.Duration(jitter(float64(pause), 0.2, 0.2))): //nolint:mnd
		}
	}
}

// process выполняет одну итерацию: получение очереди, доставку и запись результатов.
// Возвращает ErrNoExplanations если доставлять нечего и ErrUndelivered, если часть уведомлений не доставлена.
func (p *Processor) process(ctx context.Context) error {
	requests, err := p.produce(ctx)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	results := p.runWorkers(ctx, requests)
	if len(results) == 0 {
		return nil
	}

	var undelivered int
	deliveries := make([]repoargs.DeliveryResult, 0, len(results))
	for _, result := range results {
		// отмененная контекстом доставка не считается попыткой.
		if errors.Is(result.Error, context.Canceled) {
			continue
		}
		deliveries = append(deliveries, repoargs.DeliveryResult{
			ID:        result.Request.ID,
			Delivered: result.Error == nil,
		})
		if result.Error != nil {
			undelivered++
		}
	}

	if len(deliveries) == 0 {
		return nil
	}

	// результаты записываем даже после отмены ctx, иначе доставленные запросы уйдут повторно.
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultServiceTimeout)
	defer cancel()

	if recErr := p.svs.RecordDeliveries(reqCtx, deliveries); recErr != nil {
		return fmt.Errorf("process: %w", recErr)
	}
	if undelivered > 0 {
		return fmt.Errorf("process: %d of %d: %w", undelivered, len(results), ErrUndelivered)
	}
	return nil
}

// workerResult результат доставки одного запроса.
type workerResult struct {
	WorkerID uint
	Request  *domain.ExplanationRequest
	Error    error
}

// runWorkers раздает запросы воркерам и собирает результаты (fan-out/fan-in).
func (p *Processor) runWorkers(ctx context.Context, requests []domain.ExplanationRequest) []workerResult {
	var taskCh = make(chan *domain.ExplanationRequest, len(requests))
	for i := range requests {
		taskCh <- &requests[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(requests))
	for i := range p.workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]workerResult, 0, len(requests))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"requestID": result.Request.ID,
			"cashboxID": result.Request.CashboxID,
			"attempt":   result.Request.Attempts + 1,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("deliver explanation request")
		} else {
			l.Info("Delivered")
		}
		results = append(results, *result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.ExplanationRequest,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.deliver(ctx, workerID, task)
		}
	}
}

// deliver отправляет уведомление. В случае ответа 429 ждет время из заголовка Retry-After и повторяет.
func (p *Processor) deliver(ctx context.Context, workerID uint, task *domain.ExplanationRequest) *workerResult {
	notification := webhook.Notification{
		RequestID: task.ID,
		CashboxID: task.CashboxID,
		UserID:    task.UserID,
		Message:   task.Message,
		CreatedAt: task.CreatedAt,
	}
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		err := p.client.Deliver(reqCtx, notification)
		cancel()

		result := &workerResult{WorkerID: workerID, Request: task, Error: err}

		var tooManyReq *webhook.TooManyRequestError
		if !errors.As(err, &tooManyReq) {
			return result
		}
		select {
		case <-ctx.Done():
			result.Error = ctx.Err()
			return result
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
}

// produce получает очередь запросов. Возвращает ErrNoExplanations, если очередь пуста.
func (p *Processor) produce(ctx context.Context) ([]domain.ExplanationRequest, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	requests, err := p.svs.ExplanationsForDelivery(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(requests) == 0 {
		return nil, ErrNoExplanations
	}
	return requests, nil
}
