package config

// SafeErrorMessage 根据运行模式决定错误信息的暴露程度
// release 模式下返回 fallback，避免把内部错误细节泄露给客户端；
// debug 模式（或配置未初始化的开发环境）返回 err.Error() 便于排查。
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
