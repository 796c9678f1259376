package queue

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"avaliadores_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// SQSDispatcher enqueues analysis tasks on an SQS queue consumed by the
// worker binary. Only the solicitação id and the task handle cross the queue;
// the worker reloads everything else from the repository.

type SQSDispatcher struct {
	client   *sqs.Client
	queueURL string
}

var _ interfaces.ITaskDispatcher = (*SQSDispatcher)(nil)

func NewSQSDispatcher(client *sqs.Client, queueURL string) *SQSDispatcher {
	return &SQSDispatcher{client: client, queueURL: queueURL}
}

// ConnectSQS creates an SQS client from the shared AWS config.
// SQS_ENDPOINT switches to a local queue emulator (e.g. ElasticMQ/LocalStack).
func ConnectSQS(cfg aws.Config) *sqs.Client {
	endpoint := os.Getenv("SQS_ENDPOINT")
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func (d *SQSDispatcher) Dispatch(ctx context.Context, solicitacaoID string) (string, error) {
	msg := taskMessage{
		SolicitacaoID: solicitacaoID,
		TaskID:        uuid.NewString(),
		RequestedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	_, err = d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return "", err
	}

	log.Printf("[dispatcher][sqs] enqueued solicitacao_id=%s task_id=%s", solicitacaoID, msg.TaskID)
	return msg.TaskID, nil
}
