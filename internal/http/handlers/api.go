package handlers

import (
	intconfig "adminboard/internal/config"
	"adminboard/internal/repositories"
	"adminboard/internal/services"
)

// API bundles the wired services behind the HTTP surface.
type API struct {
	Env     intconfig.Env
	Master  services.MasterService
	Website services.WebsiteService
	SMS     services.SMSService
	Users   services.UserService
	Docs    services.DocsService
}

func New(env intconfig.Env) *API {
	lists := services.ListService{Users: repositories.UserRepository{}}
	countries := repositories.CountryRepository{}

	return &API{
		Env: env,
		Master: services.MasterService{
			Lists:     lists,
			Countries: countries,
			Geo:       repositories.GeoRepository{},
		},
		Website: services.WebsiteService{
			Lists:   lists,
			Website: repositories.WebsiteRepository{},
			Uploads: services.UploadService{
				AllowedTypes: env.AllowedFileTypes,
				Dir:          env.UploadDir,
			},
		},
		SMS: services.SMSService{
			Lists:      lists,
			SMS:        repositories.SMSRepository{},
			GatewayURL: env.SMSGatewayURL,
		},
		Users: services.UserService{
			Lists:     lists,
			Users:     repositories.UserRepository{},
			Projects:  repositories.ProjectRepository{},
			JWTSecret: []byte(env.JWTSecret),
		},
		Docs: services.DocsService{
			Lists:     lists,
			Countries: countries,
		},
	}
}
