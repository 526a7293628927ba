package uow

import "errors"

var (
	// ErrRepositoryNotRegistered фабрика с таким именем не зарегистрирована в UnitOfWork.
	ErrRepositoryNotRegistered = errors.New("[uow] repository not registered")
	// ErrRepositoryAlreadyRegistered имя уже занято, повторная регистрация не перезаписывает фабрику.
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	// ErrInvalidRepositoryType репозиторий не реализует запрошенный в GetRepositoryAs/GetAs тип.
	ErrInvalidRepositoryType = errors.New("[uow] invalid repository type")
)
