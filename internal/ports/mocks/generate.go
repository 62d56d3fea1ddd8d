//go:generate mockgen -source=../mention_repository.go -destination=./mock_mention_repository.go -package=mocks
//go:generate mockgen -source=../sentiment.go          -destination=./mock_sentiment.go          -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks

package mocks
