package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/estebanmar24/Software-Tablets-sub001/internal/dto"
	"github.com/estebanmar24/Software-Tablets-sub001/internal/repository"
	"github.com/estebanmar24/Software-Tablets-sub001/pkg/jwt"
)

// Mismo mensaje para código inexistente y PIN incorrecto: la pantalla de la
// tablet no debe revelar cuál de los dos falló.
var ErrCredencialesInvalidas = errors.New("código o PIN incorrecto")

// SesionService apertura de sesión de kiosco. Código de empleado + PIN →
// token de dispositivo cuyo id de sesión aísla el estado del cronómetro.
type SesionService interface {
	Abrir(ctx context.Context, req *dto.AbrirSesionRequest) (*dto.SesionResponse, error)
}

type sesionService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewSesionService crea el servicio de sesiones de tablet
func NewSesionService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) SesionService {
	return &sesionService{repo: repo, jwtMgr: jwtMgr, logger: logger}
}

func (s *sesionService) Abrir(ctx context.Context, req *dto.AbrirSesionRequest) (*dto.SesionResponse, error) {
	operador, err := s.repo.Operador.GetByCodigo(ctx, req.Codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		s.logger.Error("error consultando operador", zap.Error(err))
		return nil, err
	}
	if !operador.Activo || operador.PinHash == "" {
		return nil, ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operador.PinHash), []byte(req.Pin)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, sesionID, err := s.jwtMgr.GenerarTokenSesion(operador.OperadorID)
	if err != nil {
		s.logger.Error("error generando token de sesión", zap.Error(err))
		return nil, err
	}

	s.logger.Info("sesión abierta",
		zap.String("operador_id", operador.OperadorID),
		zap.String("sesion_id", sesionID),
	)

	return &dto.SesionResponse{
		Token:    token,
		SesionID: sesionID,
		Operador: operadorAResponse(operador),
	}, nil
}
