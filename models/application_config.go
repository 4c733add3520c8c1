package models

import (
	"reflect"
	"time"
)

// ApplicationConfig is the wide per-application configuration row. Every
// setting column is a pointer: nil means the value is not set at the
// application layer and resolution falls through to the platform default.
//
// Column names double as the storage schema; the platform catalog maps each
// column to a dotted configuration key (e.g. chat_max_message_length to
// chat.maxMessageLength).
type ApplicationConfig struct {
	ApplicationID int64     `json:"application_id" db:"application_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	// attachments
	AttachmentsMaxSizeMB      *int64  `json:"attachments_max_size_mb,omitempty" db:"attachments_max_size_mb"`
	AttachmentsAllowedTypes   *string `json:"attachments_allowed_types,omitempty" db:"attachments_allowed_types"`
	AttachmentsMaxCount       *int64  `json:"attachments_max_count,omitempty" db:"attachments_max_count"`
	AttachmentsAllowImages    *bool   `json:"attachments_allow_images,omitempty" db:"attachments_allow_images"`
	AttachmentsAllowDocuments *bool   `json:"attachments_allow_documents,omitempty" db:"attachments_allow_documents"`
	AttachmentsAllowVideos    *bool   `json:"attachments_allow_videos,omitempty" db:"attachments_allow_videos"`
	AttachmentsAllowAudio     *bool   `json:"attachments_allow_audio,omitempty" db:"attachments_allow_audio"`

	// chat
	ChatMaxMessageLength     *int64 `json:"chat_max_message_length,omitempty" db:"chat_max_message_length"`
	ChatAllowEmojis          *bool  `json:"chat_allow_emojis,omitempty" db:"chat_allow_emojis"`
	ChatAllowMentions        *bool  `json:"chat_allow_mentions,omitempty" db:"chat_allow_mentions"`
	ChatAllowReactions       *bool  `json:"chat_allow_reactions,omitempty" db:"chat_allow_reactions"`
	ChatAllowEdit            *bool  `json:"chat_allow_edit,omitempty" db:"chat_allow_edit"`
	ChatAllowDelete          *bool  `json:"chat_allow_delete,omitempty" db:"chat_allow_delete"`
	ChatEditTimeLimitMinutes *int64 `json:"chat_edit_time_limit_minutes,omitempty" db:"chat_edit_time_limit_minutes"`

	// conversations
	ConversationsMaxSimultaneous   *int64 `json:"conversations_max_simultaneous,omitempty" db:"conversations_max_simultaneous"`
	ConversationsAllowGroups       *bool  `json:"conversations_allow_groups,omitempty" db:"conversations_allow_groups"`
	ConversationsAllowCreateGroups *bool  `json:"conversations_allow_create_groups,omitempty" db:"conversations_allow_create_groups"`
	ConversationsMaxGroupSize      *int64 `json:"conversations_max_group_size,omitempty" db:"conversations_max_group_size"`

	// contacts
	ContactsAllowAdd        *bool   `json:"contacts_allow_add,omitempty" db:"contacts_allow_add"`
	ContactsRequireApproval *bool   `json:"contacts_require_approval,omitempty" db:"contacts_require_approval"`
	ContactsAllowSearch     *bool   `json:"contacts_allow_search,omitempty" db:"contacts_allow_search"`
	ContactsMaxContacts     *int64  `json:"contacts_max_contacts,omitempty" db:"contacts_max_contacts"`
	ContactsManagementMode  *string `json:"contacts_management_mode,omitempty" db:"contacts_management_mode"`

	// notifications
	NotificationsEnabled *bool `json:"notifications_enabled,omitempty" db:"notifications_enabled"`
	NotificationsSound   *bool `json:"notifications_sound,omitempty" db:"notifications_sound"`
	NotificationsPush    *bool `json:"notifications_push,omitempty" db:"notifications_push"`
	NotificationsEmail   *bool `json:"notifications_email,omitempty" db:"notifications_email"`
	NotificationsDesktop *bool `json:"notifications_desktop,omitempty" db:"notifications_desktop"`

	// security
	SecuritySessionTimeoutMinutes *int64 `json:"security_session_timeout_minutes,omitempty" db:"security_session_timeout_minutes"`
	SecurityRequireTwoFactor      *bool  `json:"security_require_two_factor,omitempty" db:"security_require_two_factor"`
	SecurityEncryptMessages       *bool  `json:"security_encrypt_messages,omitempty" db:"security_encrypt_messages"`
	SecurityAllowMultipleSessions *bool  `json:"security_allow_multiple_sessions,omitempty" db:"security_allow_multiple_sessions"`
	SecurityRequireAuthentication *bool  `json:"security_require_authentication,omitempty" db:"security_require_authentication"`
	SecurityMaxLoginAttempts      *int64 `json:"security_max_login_attempts,omitempty" db:"security_max_login_attempts"`

	// interface
	InterfaceTheme          *string `json:"interface_theme,omitempty" db:"interface_theme"`
	InterfaceLanguage       *string `json:"interface_language,omitempty" db:"interface_language"`
	InterfacePrimaryColor   *string `json:"interface_primary_color,omitempty" db:"interface_primary_color"`
	InterfaceSecondaryColor *string `json:"interface_secondary_color,omitempty" db:"interface_secondary_color"`
	InterfaceShowAvatars    *bool   `json:"interface_show_avatars,omitempty" db:"interface_show_avatars"`

	// storage
	StorageQuotaMB       *int64 `json:"storage_quota_mb,omitempty" db:"storage_quota_mb"`
	StorageRetentionDays *int64 `json:"storage_retention_days,omitempty" db:"storage_retention_days"`

	// performance
	PerformanceMaxConnections           *int64 `json:"performance_max_connections,omitempty" db:"performance_max_connections"`
	PerformanceConnectionTimeoutSeconds *int64 `json:"performance_connection_timeout_seconds,omitempty" db:"performance_connection_timeout_seconds"`
	PerformanceMessagesPerPage          *int64 `json:"performance_messages_per_page,omitempty" db:"performance_messages_per_page"`

	// integration
	IntegrationWebhooksEnabled *bool   `json:"integration_webhooks_enabled,omitempty" db:"integration_webhooks_enabled"`
	IntegrationAPIEnabled      *bool   `json:"integration_api_enabled,omitempty" db:"integration_api_enabled"`
	IntegrationWebhookURL      *string `json:"integration_webhook_url,omitempty" db:"integration_webhook_url"`
	IntegrationCustomHeaders   *string `json:"integration_custom_headers,omitempty" db:"integration_custom_headers"`

	// moderation
	ModerationEnabled               *bool  `json:"moderation_enabled,omitempty" db:"moderation_enabled"`
	ModerationProfanityFilter       *bool  `json:"moderation_profanity_filter,omitempty" db:"moderation_profanity_filter"`
	ModerationMaxReportsBeforeBlock *int64 `json:"moderation_max_reports_before_block,omitempty" db:"moderation_max_reports_before_block"`

	// backup
	BackupEnabled        *bool  `json:"backup_enabled,omitempty" db:"backup_enabled"`
	BackupFrequencyHours *int64 `json:"backup_frequency_hours,omitempty" db:"backup_frequency_hours"`
	BackupRetentionDays  *int64 `json:"backup_retention_days,omitempty" db:"backup_retention_days"`

	// audit
	AuditEnabled                 *bool  `json:"audit_enabled,omitempty" db:"audit_enabled"`
	AuditRetentionDays           *int64 `json:"audit_retention_days,omitempty" db:"audit_retention_days"`
	AuditLogConfigurationChanges *bool  `json:"audit_log_configuration_changes,omitempty" db:"audit_log_configuration_changes"`
}

// ApplicationConfigPatch is a partial application row keyed by column name.
// A present key with a nil value resets the column to "inherit default";
// absent keys are left untouched.
type ApplicationConfigPatch map[string]any

// applicationConfigColumns maps each setting column to its struct field index.
// Setting columns are exactly the pointer fields of ApplicationConfig.
var applicationConfigColumns, applicationConfigColumnOrder = indexApplicationConfig()

func indexApplicationConfig() (map[string]int, []string) {
	rt := reflect.TypeOf(ApplicationConfig{})
	index := make(map[string]int, rt.NumField())
	order := make([]string, 0, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Type.Kind() != reflect.Pointer {
			continue
		}
		column := field.Tag.Get("db")
		index[column] = i
		order = append(order, column)
	}

	return index, order
}

// ApplicationConfigColumns returns the setting columns of ApplicationConfig
// in declaration order.
func ApplicationConfigColumns() []string {
	columns := make([]string, len(applicationConfigColumnOrder))
	copy(columns, applicationConfigColumnOrder)
	return columns
}

// Value returns the dereferenced value of a setting column. ok is false when
// the column is unknown or holds NULL.
func (c ApplicationConfig) Value(column string) (value any, ok bool) {
	idx, known := applicationConfigColumns[column]
	if !known {
		return nil, false
	}

	field := reflect.ValueOf(c).Field(idx)
	if field.IsNil() {
		return nil, false
	}

	return field.Elem().Interface(), true
}

// Values returns every non-null setting column of the row.
func (c ApplicationConfig) Values() map[string]any {
	values := make(map[string]any)
	for _, column := range applicationConfigColumnOrder {
		if v, ok := c.Value(column); ok {
			values[column] = v
		}
	}
	return values
}
