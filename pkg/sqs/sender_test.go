package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	urlCalls  int
	urlErr    error
	sent      []string
	sentURLs  []string
	sendError error
}

func (f *fakeSQSClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.urlCalls++
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/000000000000/" + *params.QueueName)}, nil
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.sendError != nil {
		return nil, f.sendError
	}
	f.sent = append(f.sent, *params.MessageBody)
	f.sentURLs = append(f.sentURLs, *params.QueueUrl)
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func TestSenderSendMessage(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := sender.SendMessage(ctx, "todo-events", map[string]int{"n": i}); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}

	if client.urlCalls != 1 {
		t.Errorf("GetQueueUrl calls: got %d, want 1 (cached)", client.urlCalls)
	}
	if len(client.sent) != 3 {
		t.Fatalf("sent messages: got %d, want 3", len(client.sent))
	}
	if client.sentURLs[0] != "https://sqs.local/000000000000/todo-events" {
		t.Errorf("queue url: got %s", client.sentURLs[0])
	}

	var body map[string]int
	if err := json.Unmarshal([]byte(client.sent[2]), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["n"] != 2 {
		t.Errorf("body: got %v, want n=2", body)
	}
}

func TestSenderErrors(t *testing.T) {
	ctx := context.Background()

	urlErr := errors.New("no such queue")
	if err := NewSender(&fakeSQSClient{urlErr: urlErr}).SendMessage(ctx, "missing", "x"); !errors.Is(err, urlErr) {
		t.Errorf("queue url error: got %v, want wrapped %v", err, urlErr)
	}

	sendErr := errors.New("throttled")
	if err := NewSender(&fakeSQSClient{sendError: sendErr}).SendMessage(ctx, "todo-events", "x"); !errors.Is(err, sendErr) {
		t.Errorf("send error: got %v, want wrapped %v", err, sendErr)
	}

	if err := NewSender(&fakeSQSClient{}).SendMessage(ctx, "todo-events", make(chan int)); err == nil {
		t.Error("expected serialization error for channel body")
	}
}
