package constants

// OcrType은 바이두 OCR 인식 유형입니다
type OcrType string

const (
	OcrTypeGeneralBasic    OcrType = "general_basic"
	OcrTypeAccurateBasic   OcrType = "accurate_basic"
	OcrTypeHandwriting     OcrType = "handwriting"
	OcrTypeWebImage        OcrType = "webimage"
	OcrTypeIdCard          OcrType = "idcard"
	OcrTypeBankCard        OcrType = "bankcard"
	OcrTypeDrivingLicense  OcrType = "driving_license"
	OcrTypeVehicleLicense  OcrType = "vehicle_license"
	OcrTypeLicensePlate    OcrType = "license_plate"
	OcrTypeBusinessLicense OcrType = "business_license"
	OcrTypeReceipt         OcrType = "receipt"
)

// 지원하는 OCR 유형 (바이두 문서 순서)
var OCR_TYPES = []OcrType{
	OcrTypeGeneralBasic,
	OcrTypeAccurateBasic,
	OcrTypeHandwriting,
	OcrTypeWebImage,
	OcrTypeIdCard,
	OcrTypeBankCard,
	OcrTypeDrivingLicense,
	OcrTypeVehicleLicense,
	OcrTypeLicensePlate,
	OcrTypeBusinessLicense,
	OcrTypeReceipt,
}

// ocrType이 없거나 알 수 없는 값일 때 사용
const DEFAULT_OCR_TYPE = OcrTypeGeneralBasic

// 클라이언트에 그대로 노출되는 오류 메시지 (프론트엔드와 약속된 문구이므로 변경 금지)
const (
	MSG_METHOD_NOT_ALLOWED   = "只支持POST请求"
	MSG_MISSING_IMAGE        = "缺少图片数据"
	MSG_MISSING_CREDENTIALS  = "缺少百度OCR API凭证"
	MSG_TOKEN_ACQUIRE_FAILED = "获取百度OCR访问令牌失败"
	MSG_OCR_PROCESSING_ERROR = "处理OCR请求时出错"
	MSG_IMAGE_TOO_LARGE      = "图片数据过大"
)

// 바이두가 허용하는 base64 이미지 최대 크기 (10MB). OcrRequest의 max 태그와 같은 값이어야 함
const MAX_IMAGE_BASE64_SIZE = 10 * 1024 * 1024

// CORS 헤더 값
const (
	CORS_ALLOW_CREDENTIALS = "true"
	CORS_ALLOW_ORIGIN      = "*"
	CORS_ALLOW_METHODS     = "GET,OPTIONS,POST"
	CORS_ALLOW_HEADERS     = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"
)

// 외부 API 메트릭 라벨
const (
	API_BAIDU_TOKEN = "baidu_token"
	API_BAIDU_OCR   = "baidu_ocr"
)
