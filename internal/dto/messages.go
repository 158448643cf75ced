package dto

// Messages returned to clients, in Portuguese.
const (
	MsgDepartmentCreated       = "Departamento criado com sucesso"
	MsgDepartmentNameRequired  = "O nome do departamento é obrigatório"
	MsgDepartmentNewNameNeeded = "O novo nome do departamento é obrigatório"
	MsgDepartmentExists        = "Departamento já existe"
	MsgDepartmentNameTaken     = "Nome de departamento já existe"
	MsgDepartmentUpdated       = "Departamento atualizado com sucesso"
	MsgDepartmentDeleted       = "Departamento excluído com sucesso"
	MsgDepartmentNotFound      = "Departamento não encontrado"
	MsgDepartmentHasEmployees  = "Departamento possui colaboradores vinculados"

	MsgEmployeeCreated        = "Colaborador adicionado com sucesso"
	MsgEmployeeFieldsRequired = "Nome e departamento são obrigatórios"
	MsgEmployeeExists         = "Colaborador já existe"
	MsgEmployeeNameTaken      = "Nome de colaborador já existe"
	MsgNoUpdateFields         = "Nenhuma informação fornecida para atualização"
	MsgEmployeeUpdated        = "Colaborador atualizado com sucesso"
	MsgEmployeeDeleted        = "Colaborador excluído com sucesso"
	MsgEmployeeNotFound       = "Colaborador não encontrado"
	MsgNoEmployeesFound       = "Nenhum colaborador encontrado"

	MsgNameTooLong      = "O nome deve ter no máximo 100 caracteres"
	MsgDependentInvalid = "O nome do dependente é obrigatório e deve ter no máximo 100 caracteres"
	MsgInvalidID        = "ID inválido"
	MsgInvalidBody      = "Corpo da requisição inválido"

	MsgTokenMissing = "Token is missing"
	MsgTokenExpired = "Token has expired"
	MsgTokenInvalid = "Invalid token"

	MsgTooManyRequests = "Muitas requisições, tente novamente mais tarde"
	MsgBodyTooLarge    = "Corpo da requisição muito grande"
)
