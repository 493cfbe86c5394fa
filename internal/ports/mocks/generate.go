//go:generate mockgen -source=../cart_storage.go    -destination=./mock_cart_storage.go    -package=mocks
//go:generate mockgen -source=../cart_cache.go      -destination=./mock_cart_cache.go      -package=mocks
//go:generate mockgen -source=../cart_service.go    -destination=./mock_cart_service.go    -package=mocks
//go:generate mockgen -source=../order_submitter.go -destination=./mock_order_submitter.go -package=mocks
//go:generate mockgen -source=../event_validator.go -destination=./mock_event_validator.go -package=mocks
//go:generate mockgen -source=../logger.go          -destination=./mock_logger.go          -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
