// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package syscalls

import "golang.org/x/sys/unix"

// unixEntries holds every SYS_* constant golang.org/x/sys/unix defines for
// linux/ppc64le.
var unixEntries = []Entry{
	{Name: "restart_syscall", Number: unix.SYS_RESTART_SYSCALL},
	{Name: "exit", Number: unix.SYS_EXIT},
	{Name: "fork", Number: unix.SYS_FORK},
	{Name: "read", Number: unix.SYS_READ},
	{Name: "write", Number: unix.SYS_WRITE},
	{Name: "open", Number: unix.SYS_OPEN},
	{Name: "close", Number: unix.SYS_CLOSE},
	{Name: "waitpid", Number: unix.SYS_WAITPID},
	{Name: "creat", Number: unix.SYS_CREAT},
	{Name: "link", Number: unix.SYS_LINK},
	{Name: "unlink", Number: unix.SYS_UNLINK},
	{Name: "execve", Number: unix.SYS_EXECVE},
	{Name: "chdir", Number: unix.SYS_CHDIR},
	{Name: "time", Number: unix.SYS_TIME},
	{Name: "mknod", Number: unix.SYS_MKNOD},
	{Name: "chmod", Number: unix.SYS_CHMOD},
	{Name: "lchown", Number: unix.SYS_LCHOWN},
	{Name: "break", Number: unix.SYS_BREAK},
	{Name: "oldstat", Number: unix.SYS_OLDSTAT},
	{Name: "lseek", Number: unix.SYS_LSEEK},
	{Name: "getpid", Number: unix.SYS_GETPID},
	{Name: "mount", Number: unix.SYS_MOUNT},
	{Name: "umount", Number: unix.SYS_UMOUNT},
	{Name: "setuid", Number: unix.SYS_SETUID},
	{Name: "getuid", Number: unix.SYS_GETUID},
	{Name: "stime", Number: unix.SYS_STIME},
	{Name: "ptrace", Number: unix.SYS_PTRACE},
	{Name: "alarm", Number: unix.SYS_ALARM},
	{Name: "oldfstat", Number: unix.SYS_OLDFSTAT},
	{Name: "pause", Number: unix.SYS_PAUSE},
	{Name: "utime", Number: unix.SYS_UTIME},
	{Name: "stty", Number: unix.SYS_STTY},
	{Name: "gtty", Number: unix.SYS_GTTY},
	{Name: "access", Number: unix.SYS_ACCESS},
	{Name: "nice", Number: unix.SYS_NICE},
	{Name: "ftime", Number: unix.SYS_FTIME},
	{Name: "sync", Number: unix.SYS_SYNC},
	{Name: "kill", Number: unix.SYS_KILL},
	{Name: "rename", Number: unix.SYS_RENAME},
	{Name: "mkdir", Number: unix.SYS_MKDIR},
	{Name: "rmdir", Number: unix.SYS_RMDIR},
	{Name: "dup", Number: unix.SYS_DUP},
	{Name: "pipe", Number: unix.SYS_PIPE},
	{Name: "times", Number: unix.SYS_TIMES},
	{Name: "prof", Number: unix.SYS_PROF},
	{Name: "brk", Number: unix.SYS_BRK},
	{Name: "setgid", Number: unix.SYS_SETGID},
	{Name: "getgid", Number: unix.SYS_GETGID},
	{Name: "signal", Number: unix.SYS_SIGNAL},
	{Name: "geteuid", Number: unix.SYS_GETEUID},
	{Name: "getegid", Number: unix.SYS_GETEGID},
	{Name: "acct", Number: unix.SYS_ACCT},
	{Name: "umount2", Number: unix.SYS_UMOUNT2},
	{Name: "lock", Number: unix.SYS_LOCK},
	{Name: "ioctl", Number: unix.SYS_IOCTL},
	{Name: "fcntl", Number: unix.SYS_FCNTL},
	{Name: "mpx", Number: unix.SYS_MPX},
	{Name: "setpgid", Number: unix.SYS_SETPGID},
	{Name: "ulimit", Number: unix.SYS_ULIMIT},
	{Name: "oldolduname", Number: unix.SYS_OLDOLDUNAME},
	{Name: "umask", Number: unix.SYS_UMASK},
	{Name: "chroot", Number: unix.SYS_CHROOT},
	{Name: "ustat", Number: unix.SYS_USTAT},
	{Name: "dup2", Number: unix.SYS_DUP2},
	{Name: "getppid", Number: unix.SYS_GETPPID},
	{Name: "getpgrp", Number: unix.SYS_GETPGRP},
	{Name: "setsid", Number: unix.SYS_SETSID},
	{Name: "sigaction", Number: unix.SYS_SIGACTION},
	{Name: "sgetmask", Number: unix.SYS_SGETMASK},
	{Name: "ssetmask", Number: unix.SYS_SSETMASK},
	{Name: "setreuid", Number: unix.SYS_SETREUID},
	{Name: "setregid", Number: unix.SYS_SETREGID},
	{Name: "sigsuspend", Number: unix.SYS_SIGSUSPEND},
	{Name: "sigpending", Number: unix.SYS_SIGPENDING},
	{Name: "sethostname", Number: unix.SYS_SETHOSTNAME},
	{Name: "setrlimit", Number: unix.SYS_SETRLIMIT},
	{Name: "getrlimit", Number: unix.SYS_GETRLIMIT},
	{Name: "getrusage", Number: unix.SYS_GETRUSAGE},
	{Name: "gettimeofday", Number: unix.SYS_GETTIMEOFDAY},
	{Name: "settimeofday", Number: unix.SYS_SETTIMEOFDAY},
	{Name: "getgroups", Number: unix.SYS_GETGROUPS},
	{Name: "setgroups", Number: unix.SYS_SETGROUPS},
	{Name: "select", Number: unix.SYS_SELECT},
	{Name: "symlink", Number: unix.SYS_SYMLINK},
	{Name: "oldlstat", Number: unix.SYS_OLDLSTAT},
	{Name: "readlink", Number: unix.SYS_READLINK},
	{Name: "uselib", Number: unix.SYS_USELIB},
	{Name: "swapon", Number: unix.SYS_SWAPON},
	{Name: "reboot", Number: unix.SYS_REBOOT},
	{Name: "readdir", Number: unix.SYS_READDIR},
	{Name: "mmap", Number: unix.SYS_MMAP},
	{Name: "munmap", Number: unix.SYS_MUNMAP},
	{Name: "truncate", Number: unix.SYS_TRUNCATE},
	{Name: "ftruncate", Number: unix.SYS_FTRUNCATE},
	{Name: "fchmod", Number: unix.SYS_FCHMOD},
	{Name: "fchown", Number: unix.SYS_FCHOWN},
	{Name: "getpriority", Number: unix.SYS_GETPRIORITY},
	{Name: "setpriority", Number: unix.SYS_SETPRIORITY},
	{Name: "profil", Number: unix.SYS_PROFIL},
	{Name: "statfs", Number: unix.SYS_STATFS},
	{Name: "fstatfs", Number: unix.SYS_FSTATFS},
	{Name: "ioperm", Number: unix.SYS_IOPERM},
	{Name: "socketcall", Number: unix.SYS_SOCKETCALL},
	{Name: "syslog", Number: unix.SYS_SYSLOG},
	{Name: "setitimer", Number: unix.SYS_SETITIMER},
	{Name: "getitimer", Number: unix.SYS_GETITIMER},
	{Name: "stat", Number: unix.SYS_STAT},
	{Name: "lstat", Number: unix.SYS_LSTAT},
	{Name: "fstat", Number: unix.SYS_FSTAT},
	{Name: "olduname", Number: unix.SYS_OLDUNAME},
	{Name: "iopl", Number: unix.SYS_IOPL},
	{Name: "vhangup", Number: unix.SYS_VHANGUP},
	{Name: "idle", Number: unix.SYS_IDLE},
	{Name: "vm86", Number: unix.SYS_VM86},
	{Name: "wait4", Number: unix.SYS_WAIT4},
	{Name: "swapoff", Number: unix.SYS_SWAPOFF},
	{Name: "sysinfo", Number: unix.SYS_SYSINFO},
	{Name: "ipc", Number: unix.SYS_IPC},
	{Name: "fsync", Number: unix.SYS_FSYNC},
	{Name: "sigreturn", Number: unix.SYS_SIGRETURN},
	{Name: "clone", Number: unix.SYS_CLONE},
	{Name: "setdomainname", Number: unix.SYS_SETDOMAINNAME},
	{Name: "uname", Number: unix.SYS_UNAME},
	{Name: "modify_ldt", Number: unix.SYS_MODIFY_LDT},
	{Name: "adjtimex", Number: unix.SYS_ADJTIMEX},
	{Name: "mprotect", Number: unix.SYS_MPROTECT},
	{Name: "sigprocmask", Number: unix.SYS_SIGPROCMASK},
	{Name: "create_module", Number: unix.SYS_CREATE_MODULE},
	{Name: "init_module", Number: unix.SYS_INIT_MODULE},
	{Name: "delete_module", Number: unix.SYS_DELETE_MODULE},
	{Name: "get_kernel_syms", Number: unix.SYS_GET_KERNEL_SYMS},
	{Name: "quotactl", Number: unix.SYS_QUOTACTL},
	{Name: "getpgid", Number: unix.SYS_GETPGID},
	{Name: "fchdir", Number: unix.SYS_FCHDIR},
	{Name: "bdflush", Number: unix.SYS_BDFLUSH},
	{Name: "sysfs", Number: unix.SYS_SYSFS},
	{Name: "personality", Number: unix.SYS_PERSONALITY},
	{Name: "afs_syscall", Number: unix.SYS_AFS_SYSCALL},
	{Name: "setfsuid", Number: unix.SYS_SETFSUID},
	{Name: "setfsgid", Number: unix.SYS_SETFSGID},
	{Name: "_llseek", Number: unix.SYS__LLSEEK},
	{Name: "getdents", Number: unix.SYS_GETDENTS},
	{Name: "_newselect", Number: unix.SYS__NEWSELECT},
	{Name: "flock", Number: unix.SYS_FLOCK},
	{Name: "msync", Number: unix.SYS_MSYNC},
	{Name: "readv", Number: unix.SYS_READV},
	{Name: "writev", Number: unix.SYS_WRITEV},
	{Name: "getsid", Number: unix.SYS_GETSID},
	{Name: "fdatasync", Number: unix.SYS_FDATASYNC},
	{Name: "_sysctl", Number: unix.SYS__SYSCTL},
	{Name: "mlock", Number: unix.SYS_MLOCK},
	{Name: "munlock", Number: unix.SYS_MUNLOCK},
	{Name: "mlockall", Number: unix.SYS_MLOCKALL},
	{Name: "munlockall", Number: unix.SYS_MUNLOCKALL},
	{Name: "sched_setparam", Number: unix.SYS_SCHED_SETPARAM},
	{Name: "sched_getparam", Number: unix.SYS_SCHED_GETPARAM},
	{Name: "sched_setscheduler", Number: unix.SYS_SCHED_SETSCHEDULER},
	{Name: "sched_getscheduler", Number: unix.SYS_SCHED_GETSCHEDULER},
	{Name: "sched_yield", Number: unix.SYS_SCHED_YIELD},
	{Name: "sched_get_priority_max", Number: unix.SYS_SCHED_GET_PRIORITY_MAX},
	{Name: "sched_get_priority_min", Number: unix.SYS_SCHED_GET_PRIORITY_MIN},
	{Name: "sched_rr_get_interval", Number: unix.SYS_SCHED_RR_GET_INTERVAL},
	{Name: "nanosleep", Number: unix.SYS_NANOSLEEP},
	{Name: "mremap", Number: unix.SYS_MREMAP},
	{Name: "setresuid", Number: unix.SYS_SETRESUID},
	{Name: "getresuid", Number: unix.SYS_GETRESUID},
	{Name: "query_module", Number: unix.SYS_QUERY_MODULE},
	{Name: "poll", Number: unix.SYS_POLL},
	{Name: "nfsservctl", Number: unix.SYS_NFSSERVCTL},
	{Name: "setresgid", Number: unix.SYS_SETRESGID},
	{Name: "getresgid", Number: unix.SYS_GETRESGID},
	{Name: "prctl", Number: unix.SYS_PRCTL},
	{Name: "rt_sigreturn", Number: unix.SYS_RT_SIGRETURN},
	{Name: "rt_sigaction", Number: unix.SYS_RT_SIGACTION},
	{Name: "rt_sigprocmask", Number: unix.SYS_RT_SIGPROCMASK},
	{Name: "rt_sigpending", Number: unix.SYS_RT_SIGPENDING},
	{Name: "rt_sigtimedwait", Number: unix.SYS_RT_SIGTIMEDWAIT},
	{Name: "rt_sigqueueinfo", Number: unix.SYS_RT_SIGQUEUEINFO},
	{Name: "rt_sigsuspend", Number: unix.SYS_RT_SIGSUSPEND},
	{Name: "pread64", Number: unix.SYS_PREAD64},
	{Name: "pwrite64", Number: unix.SYS_PWRITE64},
	{Name: "chown", Number: unix.SYS_CHOWN},
	{Name: "getcwd", Number: unix.SYS_GETCWD},
	{Name: "capget", Number: unix.SYS_CAPGET},
	{Name: "capset", Number: unix.SYS_CAPSET},
	{Name: "sigaltstack", Number: unix.SYS_SIGALTSTACK},
	{Name: "sendfile", Number: unix.SYS_SENDFILE},
	{Name: "getpmsg", Number: unix.SYS_GETPMSG},
	{Name: "putpmsg", Number: unix.SYS_PUTPMSG},
	{Name: "vfork", Number: unix.SYS_VFORK},
	{Name: "ugetrlimit", Number: unix.SYS_UGETRLIMIT},
	{Name: "readahead", Number: unix.SYS_READAHEAD},
	{Name: "pciconfig_read", Number: unix.SYS_PCICONFIG_READ},
	{Name: "pciconfig_write", Number: unix.SYS_PCICONFIG_WRITE},
	{Name: "pciconfig_iobase", Number: unix.SYS_PCICONFIG_IOBASE},
	{Name: "multiplexer", Number: unix.SYS_MULTIPLEXER},
	{Name: "getdents64", Number: unix.SYS_GETDENTS64},
	{Name: "pivot_root", Number: unix.SYS_PIVOT_ROOT},
	{Name: "madvise", Number: unix.SYS_MADVISE},
	{Name: "mincore", Number: unix.SYS_MINCORE},
	{Name: "gettid", Number: unix.SYS_GETTID},
	{Name: "tkill", Number: unix.SYS_TKILL},
	{Name: "setxattr", Number: unix.SYS_SETXATTR},
	{Name: "lsetxattr", Number: unix.SYS_LSETXATTR},
	{Name: "fsetxattr", Number: unix.SYS_FSETXATTR},
	{Name: "getxattr", Number: unix.SYS_GETXATTR},
	{Name: "lgetxattr", Number: unix.SYS_LGETXATTR},
	{Name: "fgetxattr", Number: unix.SYS_FGETXATTR},
	{Name: "listxattr", Number: unix.SYS_LISTXATTR},
	{Name: "llistxattr", Number: unix.SYS_LLISTXATTR},
	{Name: "flistxattr", Number: unix.SYS_FLISTXATTR},
	{Name: "removexattr", Number: unix.SYS_REMOVEXATTR},
	{Name: "lremovexattr", Number: unix.SYS_LREMOVEXATTR},
	{Name: "fremovexattr", Number: unix.SYS_FREMOVEXATTR},
	{Name: "futex", Number: unix.SYS_FUTEX},
	{Name: "sched_setaffinity", Number: unix.SYS_SCHED_SETAFFINITY},
	{Name: "sched_getaffinity", Number: unix.SYS_SCHED_GETAFFINITY},
	{Name: "tuxcall", Number: unix.SYS_TUXCALL},
	{Name: "io_setup", Number: unix.SYS_IO_SETUP},
	{Name: "io_destroy", Number: unix.SYS_IO_DESTROY},
	{Name: "io_getevents", Number: unix.SYS_IO_GETEVENTS},
	{Name: "io_submit", Number: unix.SYS_IO_SUBMIT},
	{Name: "io_cancel", Number: unix.SYS_IO_CANCEL},
	{Name: "set_tid_address", Number: unix.SYS_SET_TID_ADDRESS},
	{Name: "fadvise64", Number: unix.SYS_FADVISE64},
	{Name: "exit_group", Number: unix.SYS_EXIT_GROUP},
	{Name: "lookup_dcookie", Number: unix.SYS_LOOKUP_DCOOKIE},
	{Name: "epoll_create", Number: unix.SYS_EPOLL_CREATE},
	{Name: "epoll_ctl", Number: unix.SYS_EPOLL_CTL},
	{Name: "epoll_wait", Number: unix.SYS_EPOLL_WAIT},
	{Name: "remap_file_pages", Number: unix.SYS_REMAP_FILE_PAGES},
	{Name: "timer_create", Number: unix.SYS_TIMER_CREATE},
	{Name: "timer_settime", Number: unix.SYS_TIMER_SETTIME},
	{Name: "timer_gettime", Number: unix.SYS_TIMER_GETTIME},
	{Name: "timer_getoverrun", Number: unix.SYS_TIMER_GETOVERRUN},
	{Name: "timer_delete", Number: unix.SYS_TIMER_DELETE},
	{Name: "clock_settime", Number: unix.SYS_CLOCK_SETTIME},
	{Name: "clock_gettime", Number: unix.SYS_CLOCK_GETTIME},
	{Name: "clock_getres", Number: unix.SYS_CLOCK_GETRES},
	{Name: "clock_nanosleep", Number: unix.SYS_CLOCK_NANOSLEEP},
	{Name: "swapcontext", Number: unix.SYS_SWAPCONTEXT},
	{Name: "tgkill", Number: unix.SYS_TGKILL},
	{Name: "utimes", Number: unix.SYS_UTIMES},
	{Name: "statfs64", Number: unix.SYS_STATFS64},
	{Name: "fstatfs64", Number: unix.SYS_FSTATFS64},
	{Name: "rtas", Number: unix.SYS_RTAS},
	{Name: "sys_debug_setcontext", Number: unix.SYS_SYS_DEBUG_SETCONTEXT},
	{Name: "migrate_pages", Number: unix.SYS_MIGRATE_PAGES},
	{Name: "mbind", Number: unix.SYS_MBIND},
	{Name: "get_mempolicy", Number: unix.SYS_GET_MEMPOLICY},
	{Name: "set_mempolicy", Number: unix.SYS_SET_MEMPOLICY},
	{Name: "mq_open", Number: unix.SYS_MQ_OPEN},
	{Name: "mq_unlink", Number: unix.SYS_MQ_UNLINK},
	{Name: "mq_timedsend", Number: unix.SYS_MQ_TIMEDSEND},
	{Name: "mq_timedreceive", Number: unix.SYS_MQ_TIMEDRECEIVE},
	{Name: "mq_notify", Number: unix.SYS_MQ_NOTIFY},
	{Name: "mq_getsetattr", Number: unix.SYS_MQ_GETSETATTR},
	{Name: "kexec_load", Number: unix.SYS_KEXEC_LOAD},
	{Name: "add_key", Number: unix.SYS_ADD_KEY},
	{Name: "request_key", Number: unix.SYS_REQUEST_KEY},
	{Name: "keyctl", Number: unix.SYS_KEYCTL},
	{Name: "waitid", Number: unix.SYS_WAITID},
	{Name: "ioprio_set", Number: unix.SYS_IOPRIO_SET},
	{Name: "ioprio_get", Number: unix.SYS_IOPRIO_GET},
	{Name: "inotify_init", Number: unix.SYS_INOTIFY_INIT},
	{Name: "inotify_add_watch", Number: unix.SYS_INOTIFY_ADD_WATCH},
	{Name: "inotify_rm_watch", Number: unix.SYS_INOTIFY_RM_WATCH},
	{Name: "spu_run", Number: unix.SYS_SPU_RUN},
	{Name: "spu_create", Number: unix.SYS_SPU_CREATE},
	{Name: "pselect6", Number: unix.SYS_PSELECT6},
	{Name: "ppoll", Number: unix.SYS_PPOLL},
	{Name: "unshare", Number: unix.SYS_UNSHARE},
	{Name: "splice", Number: unix.SYS_SPLICE},
	{Name: "tee", Number: unix.SYS_TEE},
	{Name: "vmsplice", Number: unix.SYS_VMSPLICE},
	{Name: "openat", Number: unix.SYS_OPENAT},
	{Name: "mkdirat", Number: unix.SYS_MKDIRAT},
	{Name: "mknodat", Number: unix.SYS_MKNODAT},
	{Name: "fchownat", Number: unix.SYS_FCHOWNAT},
	{Name: "futimesat", Number: unix.SYS_FUTIMESAT},
	{Name: "newfstatat", Number: unix.SYS_NEWFSTATAT},
	{Name: "unlinkat", Number: unix.SYS_UNLINKAT},
	{Name: "renameat", Number: unix.SYS_RENAMEAT},
	{Name: "linkat", Number: unix.SYS_LINKAT},
	{Name: "symlinkat", Number: unix.SYS_SYMLINKAT},
	{Name: "readlinkat", Number: unix.SYS_READLINKAT},
	{Name: "fchmodat", Number: unix.SYS_FCHMODAT},
	{Name: "faccessat", Number: unix.SYS_FACCESSAT},
	{Name: "get_robust_list", Number: unix.SYS_GET_ROBUST_LIST},
	{Name: "set_robust_list", Number: unix.SYS_SET_ROBUST_LIST},
	{Name: "move_pages", Number: unix.SYS_MOVE_PAGES},
	{Name: "getcpu", Number: unix.SYS_GETCPU},
	{Name: "epoll_pwait", Number: unix.SYS_EPOLL_PWAIT},
	{Name: "utimensat", Number: unix.SYS_UTIMENSAT},
	{Name: "signalfd", Number: unix.SYS_SIGNALFD},
	{Name: "timerfd_create", Number: unix.SYS_TIMERFD_CREATE},
	{Name: "eventfd", Number: unix.SYS_EVENTFD},
	{Name: "sync_file_range2", Number: unix.SYS_SYNC_FILE_RANGE2},
	{Name: "fallocate", Number: unix.SYS_FALLOCATE},
	{Name: "subpage_prot", Number: unix.SYS_SUBPAGE_PROT},
	{Name: "timerfd_settime", Number: unix.SYS_TIMERFD_SETTIME},
	{Name: "timerfd_gettime", Number: unix.SYS_TIMERFD_GETTIME},
	{Name: "signalfd4", Number: unix.SYS_SIGNALFD4},
	{Name: "eventfd2", Number: unix.SYS_EVENTFD2},
	{Name: "epoll_create1", Number: unix.SYS_EPOLL_CREATE1},
	{Name: "dup3", Number: unix.SYS_DUP3},
	{Name: "pipe2", Number: unix.SYS_PIPE2},
	{Name: "inotify_init1", Number: unix.SYS_INOTIFY_INIT1},
	{Name: "perf_event_open", Number: unix.SYS_PERF_EVENT_OPEN},
	{Name: "preadv", Number: unix.SYS_PREADV},
	{Name: "pwritev", Number: unix.SYS_PWRITEV},
	{Name: "rt_tgsigqueueinfo", Number: unix.SYS_RT_TGSIGQUEUEINFO},
	{Name: "fanotify_init", Number: unix.SYS_FANOTIFY_INIT},
	{Name: "fanotify_mark", Number: unix.SYS_FANOTIFY_MARK},
	{Name: "prlimit64", Number: unix.SYS_PRLIMIT64},
	{Name: "socket", Number: unix.SYS_SOCKET},
	{Name: "bind", Number: unix.SYS_BIND},
	{Name: "connect", Number: unix.SYS_CONNECT},
	{Name: "listen", Number: unix.SYS_LISTEN},
	{Name: "accept", Number: unix.SYS_ACCEPT},
	{Name: "getsockname", Number: unix.SYS_GETSOCKNAME},
	{Name: "getpeername", Number: unix.SYS_GETPEERNAME},
	{Name: "socketpair", Number: unix.SYS_SOCKETPAIR},
	{Name: "send", Number: unix.SYS_SEND},
	{Name: "sendto", Number: unix.SYS_SENDTO},
	{Name: "recv", Number: unix.SYS_RECV},
	{Name: "recvfrom", Number: unix.SYS_RECVFROM},
	{Name: "shutdown", Number: unix.SYS_SHUTDOWN},
	{Name: "setsockopt", Number: unix.SYS_SETSOCKOPT},
	{Name: "getsockopt", Number: unix.SYS_GETSOCKOPT},
	{Name: "sendmsg", Number: unix.SYS_SENDMSG},
	{Name: "recvmsg", Number: unix.SYS_RECVMSG},
	{Name: "recvmmsg", Number: unix.SYS_RECVMMSG},
	{Name: "accept4", Number: unix.SYS_ACCEPT4},
	{Name: "name_to_handle_at", Number: unix.SYS_NAME_TO_HANDLE_AT},
	{Name: "open_by_handle_at", Number: unix.SYS_OPEN_BY_HANDLE_AT},
	{Name: "clock_adjtime", Number: unix.SYS_CLOCK_ADJTIME},
	{Name: "syncfs", Number: unix.SYS_SYNCFS},
	{Name: "sendmmsg", Number: unix.SYS_SENDMMSG},
	{Name: "setns", Number: unix.SYS_SETNS},
	{Name: "process_vm_readv", Number: unix.SYS_PROCESS_VM_READV},
	{Name: "process_vm_writev", Number: unix.SYS_PROCESS_VM_WRITEV},
	{Name: "finit_module", Number: unix.SYS_FINIT_MODULE},
	{Name: "kcmp", Number: unix.SYS_KCMP},
	{Name: "sched_setattr", Number: unix.SYS_SCHED_SETATTR},
	{Name: "sched_getattr", Number: unix.SYS_SCHED_GETATTR},
	{Name: "renameat2", Number: unix.SYS_RENAMEAT2},
	{Name: "seccomp", Number: unix.SYS_SECCOMP},
	{Name: "getrandom", Number: unix.SYS_GETRANDOM},
	{Name: "memfd_create", Number: unix.SYS_MEMFD_CREATE},
	{Name: "bpf", Number: unix.SYS_BPF},
	{Name: "execveat", Number: unix.SYS_EXECVEAT},
	{Name: "switch_endian", Number: unix.SYS_SWITCH_ENDIAN},
	{Name: "userfaultfd", Number: unix.SYS_USERFAULTFD},
	{Name: "membarrier", Number: unix.SYS_MEMBARRIER},
	{Name: "mlock2", Number: unix.SYS_MLOCK2},
	{Name: "copy_file_range", Number: unix.SYS_COPY_FILE_RANGE},
	{Name: "preadv2", Number: unix.SYS_PREADV2},
	{Name: "pwritev2", Number: unix.SYS_PWRITEV2},
	{Name: "kexec_file_load", Number: unix.SYS_KEXEC_FILE_LOAD},
	{Name: "statx", Number: unix.SYS_STATX},
	{Name: "pkey_alloc", Number: unix.SYS_PKEY_ALLOC},
	{Name: "pkey_free", Number: unix.SYS_PKEY_FREE},
	{Name: "pkey_mprotect", Number: unix.SYS_PKEY_MPROTECT},
	{Name: "rseq", Number: unix.SYS_RSEQ},
	{Name: "io_pgetevents", Number: unix.SYS_IO_PGETEVENTS},
	{Name: "semtimedop", Number: unix.SYS_SEMTIMEDOP},
	{Name: "semget", Number: unix.SYS_SEMGET},
	{Name: "semctl", Number: unix.SYS_SEMCTL},
	{Name: "shmget", Number: unix.SYS_SHMGET},
	{Name: "shmctl", Number: unix.SYS_SHMCTL},
	{Name: "shmat", Number: unix.SYS_SHMAT},
	{Name: "shmdt", Number: unix.SYS_SHMDT},
	{Name: "msgget", Number: unix.SYS_MSGGET},
	{Name: "msgsnd", Number: unix.SYS_MSGSND},
	{Name: "msgrcv", Number: unix.SYS_MSGRCV},
	{Name: "msgctl", Number: unix.SYS_MSGCTL},
	{Name: "pidfd_send_signal", Number: unix.SYS_PIDFD_SEND_SIGNAL},
	{Name: "io_uring_setup", Number: unix.SYS_IO_URING_SETUP},
	{Name: "io_uring_enter", Number: unix.SYS_IO_URING_ENTER},
	{Name: "io_uring_register", Number: unix.SYS_IO_URING_REGISTER},
	{Name: "open_tree", Number: unix.SYS_OPEN_TREE},
	{Name: "move_mount", Number: unix.SYS_MOVE_MOUNT},
	{Name: "fsopen", Number: unix.SYS_FSOPEN},
	{Name: "fsconfig", Number: unix.SYS_FSCONFIG},
	{Name: "fsmount", Number: unix.SYS_FSMOUNT},
	{Name: "fspick", Number: unix.SYS_FSPICK},
	{Name: "pidfd_open", Number: unix.SYS_PIDFD_OPEN},
	{Name: "clone3", Number: unix.SYS_CLONE3},
	{Name: "close_range", Number: unix.SYS_CLOSE_RANGE},
	{Name: "openat2", Number: unix.SYS_OPENAT2},
	{Name: "pidfd_getfd", Number: unix.SYS_PIDFD_GETFD},
	{Name: "faccessat2", Number: unix.SYS_FACCESSAT2},
	{Name: "process_madvise", Number: unix.SYS_PROCESS_MADVISE},
	{Name: "epoll_pwait2", Number: unix.SYS_EPOLL_PWAIT2},
	{Name: "mount_setattr", Number: unix.SYS_MOUNT_SETATTR},
	{Name: "quotactl_fd", Number: unix.SYS_QUOTACTL_FD},
	{Name: "landlock_create_ruleset", Number: unix.SYS_LANDLOCK_CREATE_RULESET},
	{Name: "landlock_add_rule", Number: unix.SYS_LANDLOCK_ADD_RULE},
	{Name: "landlock_restrict_self", Number: unix.SYS_LANDLOCK_RESTRICT_SELF},
	{Name: "process_mrelease", Number: unix.SYS_PROCESS_MRELEASE},
	{Name: "futex_waitv", Number: unix.SYS_FUTEX_WAITV},
	{Name: "set_mempolicy_home_node", Number: unix.SYS_SET_MEMPOLICY_HOME_NODE},
	{Name: "cachestat", Number: unix.SYS_CACHESTAT},
	{Name: "fchmodat2", Number: unix.SYS_FCHMODAT2},
	{Name: "map_shadow_stack", Number: unix.SYS_MAP_SHADOW_STACK},
	{Name: "futex_wake", Number: unix.SYS_FUTEX_WAKE},
	{Name: "futex_wait", Number: unix.SYS_FUTEX_WAIT},
	{Name: "futex_requeue", Number: unix.SYS_FUTEX_REQUEUE},
	{Name: "statmount", Number: unix.SYS_STATMOUNT},
	{Name: "listmount", Number: unix.SYS_LISTMOUNT},
	{Name: "lsm_get_self_attr", Number: unix.SYS_LSM_GET_SELF_ATTR},
	{Name: "lsm_set_self_attr", Number: unix.SYS_LSM_SET_SELF_ATTR},
	{Name: "lsm_list_modules", Number: unix.SYS_LSM_LIST_MODULES},
	{Name: "mseal", Number: unix.SYS_MSEAL},
}
