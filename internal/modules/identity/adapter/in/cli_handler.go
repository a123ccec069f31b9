package in

import (
	"context"

	"partshub/internal/modules/identity/dto"
	identityin "partshub/internal/modules/identity/port/in"
)

type CLIHandler struct {
	usecase identityin.Usecase
}

func NewCLIHandler(usecase identityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) WhoAmI(ctx context.Context) (dto.IdentityOutput, error) {
	return h.usecase.Resolve(ctx)
}
