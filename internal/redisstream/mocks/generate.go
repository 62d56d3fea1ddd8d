//go:generate mockgen -source=../consumer.go -destination=./mock_consumer_deps.go -package=mocks

package mocks
