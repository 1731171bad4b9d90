package _interface

// ServiceContainer는 모든 서비스 인스턴스를 보관합니다
type ServiceContainer struct {
	AnalyzerService     AnalyzerService
	ContentTypeService  ContentTypeService
	SourceService       SourceService
	ChatService         ChatService
	ServerStatusService ServerStatusService
}
