package catalog

import "sync"

// Platform returns the catalog of platform defaults shared by every
// application.
var Platform = sync.OnceValue(func() *Catalog {
	return MustNew(platformFields...)
})

var platformFields = []Field{
	// attachments
	number("attachments.maxSizeMB", "attachments_max_size_mb", 10, 1, 1024),
	text("attachments.allowedTypes", "attachments_allowed_types", "jpg,jpeg,png,gif,pdf,doc,docx,xls,xlsx,txt,mp3,mp4"),
	number("attachments.maxCount", "attachments_max_count", 5, 1, 50),
	boolean("attachments.allowImages", "attachments_allow_images", true),
	boolean("attachments.allowDocuments", "attachments_allow_documents", true),
	boolean("attachments.allowVideos", "attachments_allow_videos", true),
	boolean("attachments.allowAudio", "attachments_allow_audio", true),

	// chat
	number("chat.maxMessageLength", "chat_max_message_length", 1000, 1, 100000),
	boolean("chat.allowEmojis", "chat_allow_emojis", true),
	boolean("chat.allowMentions", "chat_allow_mentions", true),
	boolean("chat.allowReactions", "chat_allow_reactions", true),
	boolean("chat.allowEdit", "chat_allow_edit", true),
	boolean("chat.allowDelete", "chat_allow_delete", true),
	number("chat.editTimeLimitMinutes", "chat_edit_time_limit_minutes", 15, 0, 10080),

	// conversations
	number("conversations.maxSimultaneous", "conversations_max_simultaneous", 50, 1, 10000),
	boolean("conversations.allowGroups", "conversations_allow_groups", true),
	boolean("conversations.allowCreateGroups", "conversations_allow_create_groups", true),
	number("conversations.maxGroupSize", "conversations_max_group_size", 100, 2, 10000),

	// contacts
	boolean("contacts.allowAdd", "contacts_allow_add", true),
	boolean("contacts.requireApproval", "contacts_require_approval", false),
	boolean("contacts.allowSearch", "contacts_allow_search", true),
	number("contacts.maxContacts", "contacts_max_contacts", 500, 0, 100000),
	text("contacts.managementMode", "contacts_management_mode", "LOCAL", "LOCAL", "API_EXTERNA", "HIBRIDO"),

	// notifications
	boolean("notifications.enabled", "notifications_enabled", true),
	boolean("notifications.sound", "notifications_sound", true),
	boolean("notifications.push", "notifications_push", true),
	boolean("notifications.email", "notifications_email", false),
	boolean("notifications.desktop", "notifications_desktop", true),

	// security
	number("security.sessionTimeoutMinutes", "security_session_timeout_minutes", 60, 1, 43200),
	boolean("security.requireTwoFactor", "security_require_two_factor", false),
	boolean("security.encryptMessages", "security_encrypt_messages", true),
	boolean("security.allowMultipleSessions", "security_allow_multiple_sessions", true),
	boolean("security.requireAuthentication", "security_require_authentication", true),
	number("security.maxLoginAttempts", "security_max_login_attempts", 5, 1, 100),

	// interface
	text("interface.theme", "interface_theme", "light", "light", "dark", "auto"),
	text("interface.language", "interface_language", "es"),
	text("interface.primaryColor", "interface_primary_color", "#007bff"),
	text("interface.secondaryColor", "interface_secondary_color", "#6c757d"),
	boolean("interface.showAvatars", "interface_show_avatars", true),

	// storage
	number("storage.quotaMB", "storage_quota_mb", 1024, 0, 1048576),
	number("storage.retentionDays", "storage_retention_days", 365, 1, 3650),

	// performance
	number("performance.maxConnections", "performance_max_connections", 1000, 1, 100000),
	number("performance.connectionTimeoutSeconds", "performance_connection_timeout_seconds", 30, 1, 600),
	number("performance.messagesPerPage", "performance_messages_per_page", 50, 1, 500),

	// integration
	boolean("integration.webhooksEnabled", "integration_webhooks_enabled", false),
	boolean("integration.apiEnabled", "integration_api_enabled", true),
	text("integration.webhookUrl", "integration_webhook_url", ""),
	jsonValue("integration.customHeaders", "integration_custom_headers", `{}`),

	// moderation
	boolean("moderation.enabled", "moderation_enabled", false),
	boolean("moderation.profanityFilter", "moderation_profanity_filter", false),
	number("moderation.maxReportsBeforeBlock", "moderation_max_reports_before_block", 5, 1, 1000),

	// backup
	boolean("backup.enabled", "backup_enabled", true),
	number("backup.frequencyHours", "backup_frequency_hours", 24, 1, 720),
	number("backup.retentionDays", "backup_retention_days", 30, 1, 3650),

	// audit
	boolean("audit.enabled", "audit_enabled", true),
	number("audit.retentionDays", "audit_retention_days", 90, 1, 3650),
	boolean("audit.logConfigurationChanges", "audit_log_configuration_changes", true),
}
