package parsecall

import (
	"autograph-openre/domain/depparse"
	"autograph-openre/logging"
	"autograph-openre/utils"
	"context"
	"encoding/json"
	"errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"sync"
	"time"
)

const (
	QueueParserInput  = "parser_input"
	QueueParserOutput = "parser_output"
)

var (
	errEmptyBody       = errors.New("message body is empty")
	ErrUnknownRequest  = errors.New("response does not match any pending request")
	ErrProviderFailure = errors.New("parser reported a failure")
	ErrParseTimeout    = errors.New("parser did not reply in time")
)

type Config struct {
	RabbitMQConfig MQConnectionConfig
	// 为空时使用 QueueParserInput、QueueParserOutput
	InputQueue  string
	OutputQueue string
	// 单个请求等待回复的时间，0 表示只受 ctx 限制
	Timeout time.Duration
	Logger  *logrus.Logger
}

/*
Provider 通过 RabbitMQ 调用外部的句法分析服务：请求发往 InputQueue，
回复从 OutputQueue 读取，用 request_id 对应到等待中的调用。
*/
type Provider struct {
	logger  *logrus.Logger
	send    func(req *RequestSchema) error
	closer  func() error
	timeout time.Duration

	pendingLock sync.Mutex
	pending     map[string]chan *ResponseSchema
}

func newProvider(logger *logrus.Logger, send func(req *RequestSchema) error) *Provider {
	if logger == nil {
		logger = logging.Default()
	}
	return &Provider{
		logger:  logger,
		send:    send,
		pending: make(map[string]chan *ResponseSchema),
	}
}

func NewProvider(config *Config) (*Provider, error) {
	input, output := config.InputQueue, config.OutputQueue
	if len(input) == 0 {
		input = QueueParserInput
	}
	if len(output) == 0 {
		output = QueueParserOutput
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.Default()
	}

	manager, err := newRabbitMQManager(config.RabbitMQConfig.ToURL(), []string{input, output}, logger)
	if err != nil {
		return nil, utils.WrapError(err, "connect to rabbit mq fail")
	}

	ret := newProvider(logger, func(req *RequestSchema) error {
		return manager.PublishJSON(input, req, req.RequestID, output)
	})
	ret.closer = manager.Close
	ret.timeout = config.Timeout

	if err := manager.Consume(output, ret.receive); err != nil {
		manager.Close()
		return nil, utils.WrapErrorf(err, "listen on queue [%s] fail", output)
	}

	return ret, nil
}

func (p *Provider) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

func (p *Provider) register(requestID string) chan *ResponseSchema {
	ch := make(chan *ResponseSchema, 1)

	p.pendingLock.Lock()
	defer p.pendingLock.Unlock()

	p.pending[requestID] = ch
	return ch
}

func (p *Provider) unregister(requestID string) {
	p.pendingLock.Lock()
	defer p.pendingLock.Unlock()

	delete(p.pending, requestID)
}

func (p *Provider) Parse(ctx context.Context, req *depparse.Request) ([]*depparse.Tree, error) {
	requestID := uuid.NewString()
	ch := p.register(requestID)
	defer p.unregister(requestID)

	err := p.send(&RequestSchema{
		RequestID:      requestID,
		Sentences:      req.Sentences,
		Rules:          req.Rules,
		UseAccelerator: req.UseAccelerator,
	})
	if err != nil {
		return nil, utils.WrapErrorf(err, "send parse request [%s] fail", requestID)
	}

	p.logger.Debugf("parse request [%s] with %d sentences sent", requestID, len(req.Sentences))

	var timeout <-chan time.Time
	if p.timeout > 0 {
		timer := time.NewTimer(p.timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case resp := <-ch:
		if len(resp.Error) != 0 {
			return nil, utils.WrapErrorf(ErrProviderFailure, "%s", resp.Error)
		}
		if len(resp.Trees) != len(req.Sentences) {
			return nil, utils.WrapErrorf(ErrProviderFailure, "%d trees for %d sentences", len(resp.Trees), len(req.Sentences))
		}
		return resp.Trees, nil
	case <-timeout:
		return nil, utils.WrapErrorf(ErrParseTimeout, "request [%s] after %s", requestID, p.timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Provider) receive(msg *amqp.Delivery) error {
	if len(msg.Body) == 0 {
		return utils.WrapError(errEmptyBody, "msg.Body is empty")
	}

	var resp ResponseSchema
	if err := json.Unmarshal(msg.Body, &resp); err != nil {
		return utils.WrapErrorf(err, "json unmarshal fail with [%d] bytes", len(msg.Body))
	}
	if len(resp.RequestID) == 0 {
		resp.RequestID = msg.CorrelationId
	}

	return p.deliver(&resp)
}

func (p *Provider) deliver(resp *ResponseSchema) error {
	p.pendingLock.Lock()
	ch, ok := p.pending[resp.RequestID]
	if ok {
		delete(p.pending, resp.RequestID)
	}
	p.pendingLock.Unlock()

	if !ok {
		return utils.WrapErrorf(ErrUnknownRequest, "[%s]", resp.RequestID)
	}

	ch <- resp
	return nil
}
