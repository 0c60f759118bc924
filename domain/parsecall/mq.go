package parsecall

import (
	"autograph-openre/utils"
	"encoding/json"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"sync"
)

var (
	ErrClosed        = errors.New("manager has been closed")
	ErrQueueNotFound = errors.New("queue not declared by the manager")
)

type MQConnectionConfig struct {
	// RabbitMQ分配的用户名称
	User string
	// RabbitMQ用户的密码
	Pwd string
	// RabbitMQ Broker 的ip地址
	Host string
	// RabbitMQ Broker 监听的端口
	Port string
}

func (c *MQConnectionConfig) ToURL() string {
	return "amqp://" + c.User + ":" + c.Pwd + "@" + c.Host + ":" + c.Port + "/"
}

func GenerateTestMQConnectionConfig() MQConnectionConfig {
	return MQConnectionConfig{
		User: "guest",
		Pwd:  "guest",
		Host: "localhost",
		Port: "5672",
	}
}

/*
rabbitMQManager 持有一个连接，只允许向创建时声明过的队列发送或者监听。
每个队列同时只有一个消费者，重复监听会停止之前的消费者。
*/
type rabbitMQManager struct {
	logger   *logrus.Logger
	conn     *amqp.Connection
	declared map[string]struct{}

	consumerLock sync.Mutex
	consumers    map[string]chan struct{}

	closer sync.Once
}

func newRabbitMQManager(url string, queues []string, logger *logrus.Logger) (*rabbitMQManager, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, utils.WrapError(err, "create connection fail")
	}

	declared, err := declareQueues(conn, queues)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &rabbitMQManager{
		logger:    logger,
		conn:      conn,
		declared:  declared,
		consumers: make(map[string]chan struct{}),
	}, nil
}

func declareQueues(conn *amqp.Connection, queues []string) (map[string]struct{}, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, utils.WrapError(err, "create channel fail")
	}
	defer ch.Close()

	ret := make(map[string]struct{}, len(queues))
	for _, name := range queues {
		// 非持久、不自动删除、非独占
		if _, err := ch.QueueDeclare(name, false, false, false, false, nil); err != nil {
			return nil, utils.WrapErrorf(err, "declare queue [%s] fail", name)
		}
		ret[name] = struct{}{}
	}
	return ret, nil
}

func (mq *rabbitMQManager) checkQueue(name string) error {
	if _, ok := mq.declared[name]; !ok {
		return utils.WrapErrorf(ErrQueueNotFound, "[%s]", name)
	}
	return nil
}

/*
PublishJSON 把 obj 序列化为 JSON 发送到 queue，correlationID 与 replyTo 可以为空。
*/
func (mq *rabbitMQManager) PublishJSON(queue string, obj any, correlationID, replyTo string) error {
	if err := mq.checkQueue(queue); err != nil {
		return err
	}

	body, err := json.Marshal(obj)
	if err != nil {
		return utils.WrapError(err, "json marshal fail")
	}

	ch, err := mq.conn.Channel()
	if err != nil {
		return utils.WrapError(err, "create channel fail")
	}
	defer ch.Close()

	err = ch.Publish("", queue, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		CorrelationId: correlationID,
		ReplyTo:       replyTo,
		Body:          body,
	})
	return utils.WrapErrorf(err, "publish to [%s] fail", queue)
}

/*
Consume 在 queue 上启动一个消费者，每条消息调用一次 handler，handler 的错误只记录日志。
*/
func (mq *rabbitMQManager) Consume(queue string, handler func(msg *amqp.Delivery) error) error {
	if err := mq.checkQueue(queue); err != nil {
		return err
	}

	ch, err := mq.conn.Channel()
	if err != nil {
		return utils.WrapError(err, "create channel fail")
	}

	deliveries, err := ch.Consume(queue, "", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		return utils.WrapErrorf(err, "consume [%s] fail", queue)
	}

	stop := make(chan struct{})

	mq.consumerLock.Lock()
	if old, ok := mq.consumers[queue]; ok {
		close(old)
	}
	mq.consumers[queue] = stop
	mq.consumerLock.Unlock()

	go mq.consumeLoop(ch, queue, deliveries, stop, handler)
	return nil
}

func (mq *rabbitMQManager) consumeLoop(ch *amqp.Channel, queue string, deliveries <-chan amqp.Delivery, stop <-chan struct{}, handler func(msg *amqp.Delivery) error) {
	defer ch.Close()

	for {
		select {
		case msg, alive := <-deliveries:
			if !alive {
				mq.logger.Infof("stop consuming [%s], delivery channel closed", queue)
				return
			}

			mq.logger.Debugf("receive %d bytes from [%s]", len(msg.Body), queue)
			if err := handler(&msg); err != nil {
				mq.logger.WithError(err).Errorf("handle message from [%s] fail", queue)
			}
		case <-stop:
			mq.logger.Infof("stop consuming [%s]", queue)
			return
		}
	}
}

func (mq *rabbitMQManager) Close() error {
	err := ErrClosed

	mq.closer.Do(func() {
		mq.consumerLock.Lock()
		for _, stop := range mq.consumers {
			close(stop)
		}
		mq.consumers = make(map[string]chan struct{})
		mq.consumerLock.Unlock()

		err = mq.conn.Close()
	})

	return err
}
