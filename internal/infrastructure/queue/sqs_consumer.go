package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"golang.org/x/sync/errgroup"
)

// SQSConsumer long-polls the task queue and runs the coordinator for each
// message. Messages are always deleted after handling: the state machine and
// the on-failure hook own failure semantics, and an SQS redelivery would only
// hit the duplicate-dispatch guard anyway.

type SQSConsumer struct {
	client      *sqs.Client
	queueURL    string
	proc        Processor
	concurrency int
}

func NewSQSConsumer(client *sqs.Client, queueURL string, proc Processor, concurrency int) *SQSConsumer {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &SQSConsumer{client: client, queueURL: queueURL, proc: proc, concurrency: concurrency}
}

// Run polls until ctx is cancelled.
func (c *SQSConsumer) Run(ctx context.Context) error {
	log.Printf("[worker][sqs] consuming queue=%s concurrency=%d", c.queueURL, c.concurrency)

	for {
		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[worker][sqs] receive failed: %v", err)
			continue
		}

		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(c.concurrency)
		for _, raw := range out.Messages {
			raw := raw
			eg.Go(func() error {
				c.handleMessage(gctx, aws.ToString(raw.Body), aws.ToString(raw.ReceiptHandle))
				return nil
			})
		}
		_ = eg.Wait()

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *SQSConsumer) handleMessage(ctx context.Context, body, receiptHandle string) {
	var msg taskMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil || msg.SolicitacaoID == "" {
		log.Printf("[worker][sqs] dropping malformed message: %v", err)
		c.deleteMessage(ctx, receiptHandle)
		return
	}

	handleTask(ctx, c.proc, msg)
	c.deleteMessage(ctx, receiptHandle)
}

func (c *SQSConsumer) deleteMessage(ctx context.Context, receiptHandle string) {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		log.Printf("[worker][sqs] delete failed: %v", err)
	}
}
