package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

var (
	errEventIncomplete  = errors.New("activity event missing user, trip, or timestamp")
	errEventUnknownKind = errors.New("unrecognized activity action")
)

// ActivityPersistWorker drains the activity queue and writes each event to
// the activity_events table. Malformed or unpersistable deliveries are
// nacked without requeue; an exact redelivery of the last persisted event
// (broker requeue after a lost ack) is acked without writing a second row.
type ActivityPersistWorker struct {
	conn      *amqp.Connection
	repo      *repository.ActivityRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewActivityPersistWorker(conn *amqp.Connection, repo *repository.ActivityRepository, queueName string) *ActivityPersistWorker {
	return &ActivityPersistWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

// decodeEvent unmarshals and validates one delivery body. Events with a
// zero user, trip, or timestamp, or an action the trail does not know,
// never reach the table.
func decodeEvent(body []byte) (*model.ActivityEvent, error) {
	var event model.ActivityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decode activity event failed: %w", err)
	}

	if event.UserID == 0 || event.TripID == 0 || event.OccurredAt.IsZero() {
		return nil, errEventIncomplete
	}

	switch event.Action {
	case model.ActionTripCreated, model.ActionTripUpdated, model.ActionTripDeleted:
	default:
		return nil, errEventUnknownKind
	}

	return &event, nil
}

// eventKey identifies an event for redelivery detection. The publisher
// stamps OccurredAt once, so an identical key means the same mutation.
func eventKey(event *model.ActivityEvent) string {
	return fmt.Sprintf("%d:%d:%s:%d", event.UserID, event.TripID, event.Action, event.OccurredAt.UnixNano())
}

func (w *ActivityPersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		var lastPersisted string
		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				event, err := decodeEvent(d.Body)
				if err != nil {
					log.Printf("worker drop activity event: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				key := eventKey(event)
				if d.Redelivered && key == lastPersisted {
					_ = d.Ack(false)
					continue
				}

				if err := w.repo.Create(event); err != nil {
					log.Printf("worker persist activity event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				lastPersisted = key
				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *ActivityPersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
