package service

import (
	"Agora/internal/model"
)

// canModify 编辑与删除共用同一条授权规则：本人或管理员。
// 未认证调用方（caller 为 nil）一律拒绝。调用前必须先完成存在性检查，
// 保证对不存在资源的未授权操作返回 404 而不是 403。
func canModify(caller *model.User, ownerID uint64) bool {
	return caller != nil && (caller.ID == ownerID || caller.IsAdmin)
}
