package consts

const (
	// RoleAdmin 管理员角色名，角色表中按名称唯一
	RoleAdmin = "ADMIN"
	// RoleUser 注册用户默认角色
	RoleUser = "USER"

	// MimePrefixImage 媒体上传仅接受图片
	MimePrefixImage = "image/"

	// ReportKindPost / ReportKindComment 举报通知里的目标类型
	ReportKindPost    = "post"
	ReportKindComment = "comment"
)
