//go:build wireinject
// +build wireinject

package di

import (
	"royalstay/config"
	"royalstay/transport/cli"

	"github.com/google/wire"

	bookingRepository "royalstay/internal/domains/booking/repository"
	bookingService "royalstay/internal/domains/booking/service"
	feedbackRepository "royalstay/internal/domains/feedback/repository"
	feedbackService "royalstay/internal/domains/feedback/service"
	guestRepository "royalstay/internal/domains/guest/repository"
	guestService "royalstay/internal/domains/guest/service"
	roomRepository "royalstay/internal/domains/room/repository"
	roomService "royalstay/internal/domains/room/service"
	servicereqRepository "royalstay/internal/domains/servicereq/repository"
	servicereqService "royalstay/internal/domains/servicereq/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var servicereqDomain = wire.NewSet(
	servicereqRepository.New,
	servicereqService.New,
)

var feedbackDomain = wire.NewSet(
	feedbackRepository.New,
	feedbackService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	servicereqDomain,
	feedbackDomain,
)

func InitializeMenu() *cli.Menu {
	wire.Build(
		configurations,
		domains,
		cli.New,
	)

	return &cli.Menu{}
}
